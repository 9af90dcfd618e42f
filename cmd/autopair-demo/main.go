// Package main is an interactive terminal demo for the pair engine:
// a small scratch buffer where typed delimiters auto-close, skip, and
// delete as pairs.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/autopair/internal/engine/buffer"
	"github.com/dshills/autopair/internal/engine/cursor"
	"github.com/dshills/autopair/internal/langcfg"
	"github.com/dshills/autopair/internal/log"
	"github.com/dshills/autopair/internal/pair"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configDir string
	language  string
	logPath   string
	logLevel  string
	readOnly  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := log.NullLogger
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.New(log.Config{
			Level:  log.ParseLevel(opts.logLevel),
			Output: f,
			Prefix: "autopair",
		})
	}

	registry := langcfg.NewRegistry()
	if opts.configDir != "" {
		watcher, err := langcfg.NewWatcher(registry, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create config watcher: %v\n", err)
			return 1
		}
		defer watcher.Close()
		if err := watcher.Watch(opts.configDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", opts.configDir, err)
			return 1
		}
	}

	var docOpts []buffer.Option
	if opts.readOnly {
		docOpts = append(docOpts, buffer.WithReadOnly())
	}
	doc := buffer.NewDocumentFromString("", docOpts...)
	session := pair.NewSession(doc, cursor.NewSetAt(0),
		pair.WithOutline(),
		pair.WithConfigFunc(registry.ConfigFunc(opts.language)),
		pair.WithLogger(logger),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	d := &demo{
		screen:  screen,
		session: session,
		handler: pair.NewHandler(session),
		lang:    opts.language,
		logger:  logger.WithComponent("demo"),
	}
	d.loop()
	return 0
}

// demo is the terminal event loop and renderer.
type demo struct {
	screen  tcell.Screen
	session *pair.Session
	handler *pair.Handler
	lang    string
	logger  *log.Logger
}

func (d *demo) loop() {
	for {
		d.render()
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventInterrupt:
			return
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one keystroke; false means quit.
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	doc := d.session.Document()
	head := d.session.Cursors().Primary().Head

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false

	case tcell.KeyRune:
		d.insertText(string(ev.Rune()))

	case tcell.KeyEnter:
		d.insertText("\n")

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		result := d.handler.HandleAction(pair.Action{Name: pair.ActionDeleteBackward})
		if result.Status == pair.StatusPass && head > 0 {
			if err := d.session.ApplyExternalEdit([]buffer.Edit{
				buffer.NewDelete(head-1, head),
			}); err != nil {
				d.logger.Error("delete failed: %v", err)
			}
		}

	case tcell.KeyLeft:
		if head > 0 {
			d.session.MoveTo(head - 1)
		}
	case tcell.KeyRight:
		if head < doc.Len() {
			d.session.MoveTo(head + 1)
		}
	case tcell.KeyHome:
		d.session.MoveTo(doc.LineStartAt(head))
	case tcell.KeyEnd:
		d.session.MoveTo(doc.LineEndAt(head))
	}
	return true
}

// insertText routes text through the pair engine, falling back to a
// plain insertion when the engine passes.
func (d *demo) insertText(text string) {
	result := d.handler.HandleAction(pair.Action{Name: pair.ActionInsertText, Text: text})
	if result.Status != pair.StatusPass {
		if result.Error != nil {
			d.logger.Error("insert failed: %v", result.Error)
		}
		return
	}

	head := d.session.Cursors().Primary().Head
	if err := d.session.ApplyExternalEdit([]buffer.Edit{
		buffer.NewInsert(head, text),
	}); err != nil {
		d.logger.Error("insert failed: %v", err)
		return
	}
	d.session.MoveTo(head + len([]rune(text)))
}

func (d *demo) render() {
	d.screen.Clear()
	doc := d.session.Document()
	head := d.session.Cursors().Primary().Head

	style := tcell.StyleDefault
	row := 0
	col := 0
	offset := 0
	cursorRow, cursorCol := 0, 0

	gr := uniseg.NewGraphemes(doc.Text())
	for gr.Next() {
		if offset == head {
			cursorRow, cursorCol = row, col
		}
		cluster := gr.Str()
		if cluster == "\n" {
			row++
			col = 0
		} else {
			runes := gr.Runes()
			d.screen.SetContent(col, row, runes[0], runes[1:], style)
			col += gr.Width()
		}
		offset += len(gr.Runes())
	}
	if offset == head {
		cursorRow, cursorCol = row, col
	}

	d.renderStatus()
	d.screen.ShowCursor(cursorCol, cursorRow)
	d.screen.Show()
}

// renderStatus draws the status line on the bottom row.
func (d *demo) renderStatus() {
	width, height := d.screen.Size()
	if height < 2 {
		return
	}

	lang := d.lang
	if lang == "" {
		lang = "default"
	}
	status := fmt.Sprintf(" %s | lang: %s | marks: %d | session %s ",
		version, lang, d.session.Tracker().Count(), shortID(d.session.ID().String()))

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		d.screen.SetContent(col, height-1, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		d.screen.SetContent(col, height-1, ' ', nil, style)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configDir, "config", "", "Directory of language configuration files")
	flag.StringVar(&opts.configDir, "c", "", "Directory of language configuration files (shorthand)")
	flag.StringVar(&opts.language, "lang", "", "Language identifier for delimiter lookup")
	flag.StringVar(&opts.logPath, "log", "", "Log file path (logging disabled when empty)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open the scratch buffer read-only")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "autopair-demo - interactive bracket-pair scratch buffer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: autopair-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: type to edit, Backspace deletes pairs, Esc or Ctrl+Q quits.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("autopair-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
