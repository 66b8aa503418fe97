package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Name", "Surname", "Phone Number")
	table.AddRow("Jane", "Doe", "+1000")

	view := table.View(DefaultStyles())
	t.Logf("View:\n%q", view)

	want := "Name  Surname  Phone Number\n" +
		"----  -------  ------------\n" +
		"Jane  Doe      +1000\n"
	if view != want {
		t.Errorf("View() =\n%q\nwant\n%q", view, want)
	}
}

func TestSimpleTable_HeadersOnlyWhenEmpty(t *testing.T) {
	table := NewSimpleTable("Name", "Surname", "Phone Number")

	view := table.View(DefaultStyles())
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and rule only, got %d lines: %q", len(lines), view)
	}
	if !strings.Contains(lines[0], "Phone Number") {
		t.Error("View missing header")
	}
}

func TestSimpleTable_WidensToLongestCell(t *testing.T) {
	table := NewSimpleTable("A", "B")
	table.AddRow("longer", "x")
	table.AddRow("s")

	view := table.View(DefaultStyles())
	want := "A       B\n" +
		"------  -\n" +
		"longer  x\n" +
		"s\n"
	if view != want {
		t.Errorf("View() =\n%q\nwant\n%q", view, want)
	}
}

func TestSimpleTable_TerminalStylesKeepLayout(t *testing.T) {
	styles := TerminalStyles()
	if !styles.Header.GetBold() {
		t.Error("terminal header should be bold")
	}
	if !styles.Rule.GetFaint() {
		t.Error("terminal rule should be faint")
	}

	table := NewSimpleTable("Name", "Surname")
	table.AddRow("Jane", "Doe")

	plain := strings.Split(table.View(DefaultStyles()), "\n")
	styled := strings.Split(table.View(styles), "\n")
	if len(plain) != len(styled) {
		t.Fatalf("line count differs: %d vs %d", len(plain), len(styled))
	}
	for i := range plain {
		if got, want := lipgloss.Width(styled[i]), lipgloss.Width(plain[i]); got != want {
			t.Errorf("line %d width = %d, want %d", i, got, want)
		}
	}
}
