package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// printer carries the settings of one dump.
type printer struct {
	w          io.Writer
	width      int // 0 for unlimited
	red, black *color.Color
}

func newPrinter(w io.Writer, width int, colored bool) *printer {
	p := &printer{
		w:     w,
		width: width,
		red:   color.New(color.FgRed, color.Bold),
		black: color.New(color.FgHiBlack, color.Bold),
	}
	if !colored {
		p.red.DisableColor()
		p.black.DisableColor()
	}
	return p
}

// Fprint writes an indented listing of t to w, one node per line, the right
// subtree above and the left subtree below its parent. Red and black nodes
// are colored if w is a terminal. Lines are cut to the terminal's width.
func (t *Tree[K, V]) Fprint(w io.Writer) error {
	width, colored := 0, false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		colored = true
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols
		}
	}
	return t.fprint(newPrinter(w, width, colored))
}

func (t *Tree[K, V]) fprint(p *printer) error {
	if t.a.root == 0 {
		_, err := io.WriteString(p.w, "(empty)\n")
		return err
	}
	return t.printNode(p, t.a.root, 0)
}

func (t *Tree[K, V]) printNode(p *printer, n uint32, depth int) error {
	nd := &t.a.nodes[n]
	if nd.right != 0 {
		if err := t.printNode(p, nd.right, depth+1); err != nil {
			return err
		}
	}
	indent := strings.Repeat("    ", depth)
	text := fmt.Sprintf("%v: %v", nd.key, nd.value)
	if p.width > 0 {
		text = clip(text, p.width-len(indent))
	}
	c := p.black
	if nd.color == red {
		c = p.red
	}
	if _, err := io.WriteString(p.w, indent); err != nil {
		return err
	}
	if _, err := c.Fprintln(p.w, text); err != nil {
		return err
	}
	if nd.left != 0 {
		return t.printNode(p, nd.left, depth+1)
	}
	return nil
}

// clip cuts s to at most room runes.
func clip(s string, room int) string {
	if room <= 0 {
		return ""
	}
	for i := range s {
		if room == 0 {
			return s[:i]
		}
		room--
	}
	return s
}
