package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WorksApplications/chikkarpy/chikkar"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [FILE...]",
		Short: "Print comma-joined synonyms for each line of input",
		RunE:  runSearch,
	}
	cmd.Flags().StringArrayVarP(&dictionaryPaths, "dict", "d", nil, "synonym dictionary path (repeatable)")
	cmd.Flags().BoolVar(&enableVerb, "ev", false, "enable verb/adjective synonym expansion")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print chikkarpy's version and exit")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if showVersion {
		return printVersion(cmd)
	}

	engine, closeAll, err := buildEngine(dictionaryPaths, enableVerb)
	if err != nil {
		return err
	}
	defer closeAll()

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if len(args) == 0 {
		return searchLines(engine, os.Stdin, out)
	}
	for _, path := range args {
		if err := searchFile(engine, path, out); err != nil {
			return err
		}
	}
	return nil
}

func searchFile(engine *chikkar.Chikkar, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	defer f.Close()
	return searchLines(engine, f, out)
}

func searchLines(engine *chikkar.Chikkar, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r\n")
		synonyms, err := engine.Find(word, nil)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", word, strings.Join(synonyms, ",")); err != nil {
			return fmt.Errorf("search: %w", err)
		}
	}
	return scanner.Err()
}

// buildEngine opens every path as a trie-enabled dictionary and stacks
// them onto a fresh engine, highest-priority (last -d) on top.
func buildEngine(paths []string, ev bool) (*chikkar.Chikkar, func(), error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("search: no dictionary given (-d); a pre-built system dictionary is not bundled")
	}

	engine := chikkar.New()
	if ev {
		engine.EnableVerb()
	}

	var opened []*chikkar.Dictionary
	for _, p := range paths {
		d, err := chikkar.OpenDictionary(p, true)
		if err != nil {
			for _, o := range opened {
				o.Close()
			}
			return nil, nil, fmt.Errorf("search: %w", err)
		}
		opened = append(opened, d)
		engine.AddDictionary(d)
	}

	closeAll := func() {
		for _, d := range opened {
			d.Close()
		}
	}
	return engine, closeAll, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return f, nil
}
