// Command ntsfdump encodes, decodes, and inspects NTSF files.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ntsf-dev/ntsf"
	"github.com/ntsf-dev/ntsf/internal/nlog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	args := os.Args[2:]

	fs := flag.NewFlagSet(sub, flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	cacheSize := fs.Int("cache-size", -1, "decode cache size (overrides config)")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ntsfdump: loading config: %v\n", err)
		os.Exit(1)
	}
	if *cacheSize >= 0 {
		cfg.CacheSize = *cacheSize
	}
	if *verbose {
		cfg.Verbose = true
	}
	log := nlog.New(os.Stderr, cfg.Verbose)

	cache, err := newDecodeCache(cfg.CacheSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ntsfdump: building decode cache: %v\n", err)
		os.Exit(1)
	}

	rest := fs.Args()
	var runErr error
	switch sub {
	case "encode":
		runErr = runEncode(rest, cfg, log)
	case "decode":
		runErr = runDecode(rest, cfg, log, cache)
	case "inspect":
		runErr = runInspect(rest, cfg, log, cache)
	default:
		usage()
		os.Exit(2)
	}
	if runErr != nil {
		log.Errorf("%v", runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ntsfdump <encode|decode|inspect> [flags] <args>")
	fmt.Fprintln(os.Stderr, "  encode <wordlist-file> <out.ntsf>")
	fmt.Fprintln(os.Stderr, "  decode <in.ntsf>")
	fmt.Fprintln(os.Stderr, "  inspect <in.ntsf>")
}

// runEncode builds a SimpleNode trie from whitespace-tokenized n-gram
// lines in a text file, then writes it out in NTSF wire form.
func runEncode(args []string, cfg config, log nlog.Logger) error {
	if len(args) != 2 {
		return fmt.Errorf("encode: want <wordlist-file> <out.ntsf>, got %d args", len(args))
	}
	in, out := args[0], args[1]

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening %s: %w", in, err)
	}
	defer f.Close()

	var ngrams [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ngrams = append(ngrams, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	root := ntsf.BuildFromNGrams(ngrams)
	log.Infof("built tree from %d n-grams", len(ngrams))

	w, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer w.Close()

	var opts []ntsf.EncodeOption
	if cfg.StrictLabelLength {
		opts = append(opts, ntsf.WithMaxLabelLen(255))
	}
	if err := ntsf.Encode[*ntsf.SimpleNode](w, ntsf.SimpleTree{}, root, opts...); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	log.Infof("wrote %s", out)
	return nil
}

func readAndDecode(path string, cache *decodeCache, log nlog.Logger) (*ntsf.SimpleNode, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	key := contentKey(data)
	if root, ok := cache.get(key); ok {
		log.Infof("decode cache hit for %s", path)
		return root, data, nil
	}
	root, err := ntsf.Decode[*ntsf.SimpleNode](bytes.NewReader(data), ntsf.SimpleBuilder{})
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	cache.put(key, root)
	return root, data, nil
}

func runDecode(args []string, cfg config, log nlog.Logger, cache *decodeCache) error {
	if len(args) != 1 {
		return fmt.Errorf("decode: want <in.ntsf>, got %d args", len(args))
	}
	root, _, err := readAndDecode(args[0], cache, log)
	if err != nil {
		return err
	}
	nodes, depth := treeShape(root, 0)
	fmt.Printf("nodes=%d depth=%d\n", nodes, depth)
	if cfg.Verbose {
		dumpPreorder(root, 0)
	}
	return nil
}

func runInspect(args []string, cfg config, log nlog.Logger, cache *decodeCache) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect: want <in.ntsf>, got %d args", len(args))
	}
	_, data, err := readAndDecode(args[0], cache, log)
	if err != nil {
		return err
	}
	bank, err := ntsf.DecodeBank(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", args[0], err)
	}
	fmt.Printf("file=%s size=%d bankEntries=%d\n", args[0], len(data), len(bank))
	return nil
}

func treeShape(n *ntsf.SimpleNode, depth int) (nodes, maxDepth int) {
	nodes, maxDepth = 1, depth
	for _, kid := range n.Kids {
		kidNodes, kidDepth := treeShape(kid, depth+1)
		nodes += kidNodes
		if kidDepth > maxDepth {
			maxDepth = kidDepth
		}
	}
	return nodes, maxDepth
}

func dumpPreorder(n *ntsf.SimpleNode, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), n.Label)
	for _, kid := range n.Kids {
		dumpPreorder(kid, depth+1)
	}
}
