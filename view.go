package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"keysheet/meta"
	"keysheet/store"
)

const chordColumnWidth = 28

func (m *keysheet) View() string {
	if m.viewWidth == 0 || m.viewHeight == 0 {
		return "Loading..."
	}

	bodyHeight := m.viewHeight - 2

	body := m.viewTable(bodyHeight)
	base := lipgloss.JoinVertical(
		lipgloss.Left,
		meta.BodyStyle(m.viewWidth, bodyHeight).Render(body),
		m.viewStatusLine(),
		m.viewBottomLine(),
	)

	popup := m.viewPopup()
	if popup == "" {
		return base
	}

	return overlay.New(
		staticView(popup),
		staticView(base),
		overlay.Center,
		overlay.Center,
		0, 0,
	).View()
}

func (m *keysheet) viewTable(height int) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		meta.TableHeaderStyle.Width(chordColumnWidth).Render("KEYS"),
		meta.TableHeaderStyle.Render("DESCRIPTION"),
	)

	if len(m.filtered) == 0 {
		empty := meta.DimStyle.Render(fmt.Sprintf("No keybinds in %s.", m.activeGroup))
		return lipgloss.JoinVertical(lipgloss.Left, header, empty)
	}

	// Keep the selected row inside the visible window
	visibleRows := max(1, height-1)
	firstVisible := 0
	if m.selectedRow >= visibleRows {
		firstVisible = m.selectedRow - visibleRows + 1
	}

	rows := []string{header}
	for row := firstVisible; row < len(m.filtered) && row < firstVisible+visibleRows; row++ {
		rows = append(rows, m.viewRow(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *keysheet) viewRow(row int) string {
	item := m.filtered[row]
	record := m.store.At(item.Index)

	chordMatches, descriptionMatches := splitMatches(record, item.Matches)

	chord := m.viewCell(row, store.ColumnChord, record.Chord, chordMatches, chordColumnWidth)
	description := m.viewCell(row, store.ColumnDescription, record.Description, descriptionMatches, 0)

	return lipgloss.JoinHorizontal(lipgloss.Top, chord, description)
}

func (m *keysheet) viewCell(row, col int, text string, matches []int, width int) string {
	selected := row == m.selectedRow && col == m.selectedCol

	if selected && m.inputMode == meta.INSERTMODE {
		var rendered string
		if m.recorder != nil {
			rendered = meta.DimStyle.Render("press a key...")
		} else {
			rendered = m.editInput.View()
		}
		return pad(rendered, width)
	}

	style := lipgloss.NewStyle()
	if selected {
		style = meta.SelectedCellStyle
	}

	return pad(highlight(text, matches, style), width)
}

// highlight renders text with the matched rune positions in the search
// highlight style.
func highlight(text string, matches []int, base lipgloss.Style) string {
	if len(matches) == 0 {
		return base.Render(text)
	}

	matched := make(map[int]struct{}, len(matches))
	for _, position := range matches {
		matched[position] = struct{}{}
	}

	var builder strings.Builder
	for i, r := range []rune(text) {
		if _, ok := matched[i]; ok {
			builder.WriteString(meta.MatchHighlightStyle.Render(string(r)))
		} else {
			builder.WriteString(base.Render(string(r)))
		}
	}

	return builder.String()
}

// splitMatches translates match positions over a record's search text into
// per-column rune positions.
func splitMatches(record store.Record, matches []int) (chord []int, description []int) {
	boundary := len([]rune(record.Chord))

	for _, position := range matches {
		if position < boundary {
			chord = append(chord, position)
		} else if position > boundary {
			// Positions after the separator space belong to the description
			description = append(description, position-boundary-1)
		}
	}

	return chord, description
}

func pad(rendered string, width int) string {
	if width == 0 {
		return rendered
	}

	padding := width - lipgloss.Width(rendered)
	if padding <= 0 {
		return rendered
	}

	return rendered + strings.Repeat(" ", padding)
}

func (m *keysheet) viewStatusLine() string {
	badge := m.viewModeBadge()

	statusStyle := meta.StatusLineStyle
	if m.status.isError {
		statusStyle = meta.StatusLineErrorStyle
	}
	status := statusStyle.Render(" " + m.status.text)

	group := meta.ActiveGroupStyle.Render(m.activeGroup + " ")
	if m.dirty {
		group = meta.ActiveGroupStyle.Render(m.activeGroup + " [+] ")
	}

	filler := m.viewWidth - lipgloss.Width(badge) - lipgloss.Width(status) - lipgloss.Width(group)
	if filler < 0 {
		filler = 0
	}

	return badge + status + meta.StatusLineStyle.Render(strings.Repeat(" ", filler)) + group
}

func (m *keysheet) viewModeBadge() string {
	switch m.inputMode {
	case meta.INSERTMODE:
		return meta.InsertBadge.Render("INSERT")

	case meta.SEARCHMODE:
		return meta.InsertBadge.Render("SEARCH")

	case meta.COMMANDMODE:
		return meta.InsertBadge.Render("COMMAND")

	default:
		return meta.NormalBadge.Render("NORMAL")
	}
}

func (m *keysheet) viewBottomLine() string {
	switch m.inputMode {
	case meta.COMMANDMODE:
		return meta.CommandStyle.Render(m.commandInput.View())

	case meta.SEARCHMODE:
		return m.searchInput.View()
	}

	line := ""
	if m.searchQuery != "" {
		line = meta.DimStyle.Render("/" + m.searchQuery)
	}

	pending := m.currentMotion.View()
	if pending != "" {
		padding := m.viewWidth - lipgloss.Width(line) - lipgloss.Width(pending) - 1
		if padding < 0 {
			padding = 0
		}
		line += strings.Repeat(" ", padding) + pending
	}

	return line
}

func (m *keysheet) viewPopup() string {
	switch m.inputMode {
	case meta.GROUPFILTERMODE:
		return m.viewGroupFilter()

	case meta.EXPORTMODE:
		return viewPicker("Export", exportOptions, m.exportMenu.selected)

	case meta.IMPORTMODE:
		return viewPicker("Import", importOptions, m.importMenu.selected)

	case meta.HELPMODE:
		return m.viewHelp()
	}

	return ""
}

func (m *keysheet) viewGroupFilter() string {
	lines := []string{m.groupFilter.input.View(), ""}

	for i, group := range m.groupMatches() {
		marker := "  "
		if group == m.activeGroup {
			marker = "* "
		}

		line := marker + group
		if i == m.groupFilter.selected {
			line = meta.SelectedCellStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return meta.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func viewPicker(title string, options []string, selected int) string {
	lines := []string{meta.TableHeaderStyle.Render(title), ""}

	for i, option := range options {
		line := "  " + option
		if i == selected {
			line = meta.SelectedCellStyle.Render("> " + option)
		}

		lines = append(lines, line)
	}

	return meta.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *keysheet) viewHelp() string {
	km := m.keymap

	binding := func(keys []string, action string) string {
		label := meta.Motion(keys).View()
		return fmt.Sprintf("%-14s %s", label, action)
	}

	lines := []string{
		meta.TableHeaderStyle.Render("Keybinds"),
		"",
		binding([]string{km.Up}, "move up"),
		binding([]string{km.Down}, "move down"),
		binding([]string{km.GotoTop, km.GotoTop}, "jump to top"),
		binding([]string{km.GotoBottom}, "jump to bottom"),
		binding([]string{km.InsertMode}, "edit selected cell"),
		binding([]string{km.NewRowBelow}, "new keybind below"),
		binding([]string{km.NewRowAbove}, "new keybind above"),
		binding([]string{km.DeleteLeader, km.DeleteLeader}, "delete keybind"),
		binding([]string{km.Undo}, "undo"),
		binding([]string{km.SearchMode}, "search"),
		binding([]string{km.Leader, km.GroupFilter}, "switch group"),
		binding([]string{km.Leader, km.ExportMenu}, "export"),
		binding([]string{km.Leader, km.ImportMenu}, "import"),
		"",
		meta.TableHeaderStyle.Render("Commands"),
		"",
		":w [group]    save",
		":wq           save and quit",
		":q            quit",
		":q!           quit without saving",
		":new <group>  create a group",
		":help         this popup",
	}

	return meta.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// staticView adapts an already rendered string to tea.Model for overlay
// composition.
type staticView string

func (s staticView) Init() tea.Cmd { return nil }

func (s staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }

func (s staticView) View() string { return string(s) }
