package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/resolver"
	"github.com/packpath/packpath/internal/ui"
	"github.com/packpath/packpath/pkg/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Resolve every filename in a manifest and report failures",
	Long: `Check reads filenames from a manifest file (one per line, # starts a
comment), resolves each against the catalog, and prints a summary. The
command fails when any filename cannot be placed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntP("jobs", "j", 4, "Number of concurrent resolutions")
	checkCmd.Flags().Bool("json", false, "Print results as JSON")
}

// batchItem is the outcome for one manifest entry.
type batchItem struct {
	Filename string `json:"filename"`
	Path     string `json:"path,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"error_type,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	jobs, _ := cmd.Flags().GetInt("jobs")
	asJSON, _ := cmd.Flags().GetBool("json")

	names, err := readManifest(args[0])
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("manifest %s lists no filenames", args[0])
	}

	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	snap, err := m.Snapshot()
	if err != nil {
		return err
	}

	var tracker ui.Tracker
	if !asJSON {
		hm := ui.NewHeadlessManager()
		tracker = ui.NewTracker(ui.NewTheme(), hm, "resolving", len(names))
	}

	items := resolveBatch(snap, names, jobs, func() {
		if tracker != nil {
			tracker.Increment(1)
		}
	})
	if tracker != nil {
		tracker.Done()
	}

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return err
		}
	} else {
		for _, item := range items {
			if item.Error != "" {
				_, _ = fmt.Fprintf(out, "%s %s\n  %s %s\n", symError(), item.Filename,
					cliMuted.Render(item.Kind), item.Error)
			}
		}
		_, _ = fmt.Fprintf(out, "\n%s %d resolved, %s %d failed (of %d)\n",
			symSuccess(), len(items)-failed, symError(), failed, len(items))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d filenames failed to resolve", failed, len(items))
	}
	return nil
}

// resolveBatch resolves names against snap with up to jobs workers,
// calling tick after each item. Results keep manifest order.
func resolveBatch(snap *catalog.Snapshot, names []string, jobs int, tick func()) []batchItem {
	if jobs < 1 {
		jobs = 1
	}

	items := make([]batchItem, len(names))
	indexes := make(chan int)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				item := batchItem{Filename: names[i]}
				result, err := resolver.Resolve(names[i], snap)
				if err != nil {
					item.Error = err.Error()
					if kind, ok := resolver.KindOf(err); ok {
						item.Kind = string(kind)
					}
				} else {
					item.Path = result.Path.FullPath
				}
				items[i] = item

				mu.Lock()
				tick()
				mu.Unlock()
			}
		}()
	}

	for i := range names {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return items
}

// readManifest reads filenames from path, one per line. Blank lines and
// lines starting with # are skipped.
func readManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return names, nil
}
