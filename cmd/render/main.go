//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

// Command render is a thin CLI wrapper around the blackfriday renderers.
// It is an external collaborator in the same sense the Markdown parser
// is: it reads an already-built node tree (as JSON on stdin, the shape
// blackfriday.Node marshals to) and writes one backend's rendering to stdout.
// It does not parse Markdown text itself.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ragodev/blackfriday"
)

var (
	flagStandalone bool
	flagSkipHTML   bool
	flagEscapeHTML bool
	flagHardWrap   bool
	flagHeadIDs    bool
	flagOwasp      bool
	flagNumEnt     bool

	flagGeminiMetadata bool
	flagGeminiLinkIn   bool
	flagGeminiLinkEnd  bool
	flagGeminiNoRef    bool
	flagGeminiRoman    bool

	flagTermNoLink     bool
	flagTermShortLink  bool
	flagTermStandalone bool
	flagTermCols       int
	flagTermHMargin    int
	flagTermVMargin    int
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "render",
		Short: "Render a blackfriday node tree to HTML, gemtext, or terminal text",
		Long: `render reads a JSON-encoded node tree from stdin and writes one
of three renderings to stdout. It never parses Markdown itself; the tree
is expected to already exist, built by an external parser.`,
	}
	root.AddCommand(htmlCmd(), geminiCmd(), termCmd())
	return root
}

func htmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Render to HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree()
			if err != nil {
				return err
			}
			var flags blackfriday.HTMLFlags
			if flagStandalone {
				flags |= blackfriday.HTMLStandalone
			}
			if flagSkipHTML {
				flags |= blackfriday.HTMLSkipHTML
			}
			if flagEscapeHTML {
				flags |= blackfriday.HTMLEscape
			}
			if flagHardWrap {
				flags |= blackfriday.HTMLHardWrap
			}
			if flagHeadIDs {
				flags |= blackfriday.HTMLHeadIDs
			}
			if flagOwasp {
				flags |= blackfriday.HTMLOwasp
			}
			if flagNumEnt {
				flags |= blackfriday.HTMLNumEnt
			}
			r := blackfriday.NewHTMLRenderer(flags)
			out := blackfriday.NewBuf()
			if err := r.Render(out, nil, root); err != nil {
				return err
			}
			_, err = os.Stdout.WriteString(out.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&flagStandalone, "standalone", false, "wrap output in a full document")
	cmd.Flags().BoolVar(&flagSkipHTML, "skip-html", false, "drop raw HTML/blockhtml nodes")
	cmd.Flags().BoolVar(&flagEscapeHTML, "escape-html", false, "escape raw HTML/blockhtml nodes instead of passing through")
	cmd.Flags().BoolVar(&flagHardWrap, "hard-wrap", false, "turn single newlines into <br/>")
	cmd.Flags().BoolVar(&flagHeadIDs, "head-ids", false, "emit id attributes on headers")
	cmd.Flags().BoolVar(&flagOwasp, "owasp", false, "strip control characters per OWASP guidance")
	cmd.Flags().BoolVar(&flagNumEnt, "numeric-entities", false, "emit numeric rather than named character references")
	return cmd
}

func geminiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gemini",
		Short: "Render to gemtext",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree()
			if err != nil {
				return err
			}
			var flags blackfriday.GeminiFlags
			if flagGeminiMetadata {
				flags |= blackfriday.GeminiMetadata
			}
			if flagGeminiLinkIn {
				flags |= blackfriday.GeminiLinkIn
			}
			if flagGeminiLinkEnd {
				flags |= blackfriday.GeminiLinkEnd
			}
			if flagGeminiNoRef {
				flags |= blackfriday.GeminiLinkNoRef
			}
			if flagGeminiRoman {
				flags |= blackfriday.GeminiLinkRoman
			}
			r := blackfriday.NewGeminiRenderer(flags)
			out := blackfriday.NewBuf()
			if err := r.Render(out, nil, root); err != nil {
				return err
			}
			_, err = os.Stdout.WriteString(out.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&flagGeminiMetadata, "metadata", false, "set GEMINI_METADATA (this command passes no metadata queue, so no preamble lines are printed)")
	cmd.Flags().BoolVar(&flagGeminiLinkIn, "link-in", false, "place each link reference on its own line right after the link")
	cmd.Flags().BoolVar(&flagGeminiLinkEnd, "link-end", false, "defer all link references to the end of the document")
	cmd.Flags().BoolVar(&flagGeminiNoRef, "no-ref", false, "omit the [n] reference marker from link text")
	cmd.Flags().BoolVar(&flagGeminiRoman, "roman", false, "number link references with lowercase Roman numerals instead of letters")
	return cmd
}

func termCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Render to ANSI-styled terminal text",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree()
			if err != nil {
				return err
			}
			var flags blackfriday.TermFlags
			if flagTermNoLink {
				flags |= blackfriday.TermNoLink
			}
			if flagTermShortLink {
				flags |= blackfriday.TermShortLink
			}
			if flagTermStandalone {
				flags |= blackfriday.TermStandalone
			}
			r := blackfriday.NewTermRenderer(blackfriday.TermOptions{
				Flags:   flags,
				Cols:    flagTermCols,
				HMargin: flagTermHMargin,
				VMargin: flagTermVMargin,
			})
			out := blackfriday.NewBuf()
			if err := r.Render(out, nil, root); err != nil {
				return err
			}
			_, err = os.Stdout.WriteString(out.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&flagTermNoLink, "no-link", false, "suppress link target display")
	cmd.Flags().BoolVar(&flagTermShortLink, "short-link", false, "elide long link targets")
	cmd.Flags().BoolVar(&flagTermStandalone, "standalone", false, "emit the leading vertical margin")
	cmd.Flags().IntVar(&flagTermCols, "cols", 80, "wrap column")
	cmd.Flags().IntVar(&flagTermHMargin, "hmargin", 0, "left margin width")
	cmd.Flags().IntVar(&flagTermVMargin, "vmargin", 0, "leading blank lines in standalone mode")
	return cmd
}

func readTree() (*blackfriday.Node, error) {
	dec := json.NewDecoder(os.Stdin)
	var root blackfriday.Node
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("render: decoding node tree: %w", err)
	}
	blackfriday.Relink(&root)
	return &root, nil
}
