package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultBindings(t *testing.T) {
	k := Default()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"start run", k.StartRun, keyMsg("r")},
		{"cancel run", k.CancelRun, keyMsg("c")},
		{"reload", k.Reload, keyMsg("R")},
		{"next tab", k.NextTab, keyMsg("tab")},
		{"up arrow", k.Up, tea.KeyMsg{Type: tea.KeyUp}},
		{"up vim", k.Up, keyMsg("k")},
		{"down vim", k.Down, keyMsg("j")},
		{"expand enter", k.Expand, tea.KeyMsg{Type: tea.KeyEnter}},
		{"theme", k.CycleTheme, keyMsg("t")},
		{"help", k.Help, keyMsg("?")},
		{"quit q", k.Quit, keyMsg("q")},
		{"quit ctrl-c", k.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("key %q does not match binding %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestQuitDoesNotMatchOtherKeys(t *testing.T) {
	k := Default()

	if key.Matches(keyMsg("r"), k.Quit) {
		t.Error("quit binding matched 'r'")
	}
	if key.Matches(keyMsg("q"), k.StartRun) {
		t.Error("start run binding matched 'q'")
	}
}

func TestHelpViews(t *testing.T) {
	k := Default()

	short := k.ShortHelp()
	if len(short) == 0 {
		t.Fatal("ShortHelp() returned no bindings")
	}

	full := k.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() returned %d columns, want 3", len(full))
	}
	for i, col := range full {
		if len(col) == 0 {
			t.Errorf("FullHelp() column %d is empty", i)
		}
	}
}
