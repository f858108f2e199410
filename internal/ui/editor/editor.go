package editor

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arames/vim-sem-tabs/internal/config"
	"github.com/arames/vim-sem-tabs/internal/engine"
	"github.com/arames/vim-sem-tabs/internal/host"
	"github.com/arames/vim-sem-tabs/internal/indent"
	"github.com/arames/vim-sem-tabs/internal/log"
)

const maxLogLines = 4

// Model holds the playground editor state. All edits flow through the
// engine's event policy; the model itself only routes keys and renders.
type Model struct {
	buf  *host.MemBuffer
	eng  *engine.Engine
	cfg  *config.Config
	path string // file to save to with ctrl+s; empty for scratch

	mode     Mode
	pending  string // partially entered normal-mode sequence ("=")
	width    int
	height   int
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string

	logs     []string
	listener *log.LogListener
}

// New creates a playground editor over buf. path may be empty for a
// scratch buffer.
func New(buf *host.MemBuffer, eng *engine.Engine, cfg *config.Config, path string) Model {
	return Model{
		buf:      buf,
		eng:      eng,
		cfg:      cfg,
		path:     path,
		mode:     ModeNormal,
		keys:     defaultKeyMap(),
		help:     help.New(),
		listener: log.NewListener(context.Background()),
	}
}

// Buffer exposes the underlying buffer, mainly for tests.
func (m *Model) Buffer() *host.MemBuffer { return m.buf }

// CurrentMode returns the active editing mode.
func (m *Model) CurrentMode() Mode { return m.mode }

func (m *Model) Init() tea.Cmd {
	if m.listener != nil {
		return m.listener.Listen()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case log.LogEvent:
		m.logs = append(m.logs, msg.Payload)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		if m.listener != nil {
			return m, m.listener.Listen()
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeInsert {
			return m.updateInsert(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A leading "=" waits for its motion: "==" realigns the line,
	// "=G" realigns from the cursor to the end of the buffer.
	if m.pending == "=" {
		m.pending = ""
		switch key {
		case "=":
			m.eng.RealignLine()
		case "G":
			line, _ := m.buf.Cursor()
			m.eng.RealignRange(line, m.buf.LineCount())
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case "i":
		m.enterInsert()
	case "a":
		line, col := m.buf.Cursor()
		m.buf.SetCursor(line, col+1)
		m.enterInsert()
	case "A":
		line, _ := m.buf.Cursor()
		m.buf.SetCursor(line, endOfLine(m.buf, line))
		m.enterInsert()
	case "o":
		m.eng.HandleOpenBelow()
		m.enterInsert()
	case "O":
		m.eng.HandleOpenAbove()
		m.enterInsert()
	case "=":
		m.pending = "="
	case "P":
		s := m.buf.Settings()
		s.PastePreserve = !s.PastePreserve
		if s.PastePreserve {
			m.status = "paste on"
		} else {
			m.status = "paste off"
		}
	case "h", "left":
		m.moveCursor(0, -1)
	case "l", "right":
		m.moveCursor(0, 1)
	case "j", "down":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(-1, 0)
	case "0":
		line, _ := m.buf.Cursor()
		m.buf.SetCursor(line, 1)
	case "$":
		line, _ := m.buf.Cursor()
		m.buf.SetCursor(line, endOfLine(m.buf, line))
	case "G":
		m.buf.SetCursor(m.buf.LineCount(), 1)
	case "g":
		m.buf.SetCursor(1, 1)
	case "ctrl+s":
		m.save()
	}
	return m, nil
}

func (m *Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.eng.HandleInsertLeave()
		m.mode = ModeNormal
		log.Debug(log.CatUI, "left insert mode")
		return m, nil
	case "tab":
		m.eng.HandleTab()
		return m, nil
	case "enter":
		m.eng.HandleNewLine()
		return m, nil
	case "backspace":
		m.buf.DeleteBack()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		m.buf.InsertText(string(msg.Runes))
	} else if msg.Type == tea.KeySpace {
		m.buf.InsertText(" ")
	}
	return m, nil
}

func (m *Model) enterInsert() {
	m.mode = ModeInsert
	m.status = ""
	log.Debug(log.CatUI, "entered insert mode")
}

func (m *Model) moveCursor(dLine, dCol int) {
	line, col := m.buf.Cursor()
	m.buf.SetCursor(line+dLine, col+dCol)
}

func (m *Model) save() {
	if m.path == "" {
		m.status = "no file to save to"
		return
	}
	if err := os.WriteFile(m.path, []byte(m.buf.Text()+"\n"), 0o644); err != nil {
		m.status = "save failed: " + err.Error()
		log.ErrorErr(log.CatUI, "save failed", err, "path", m.path)
		return
	}
	m.status = "saved " + m.path
}

// endOfLine returns the raw column one past the last grapheme of line.
func endOfLine(b *host.MemBuffer, line int) int {
	return indent.RawLen(b.Line(line)) + 1
}
