package ingest

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// Role is the semantic meaning of a spreadsheet column.
type Role int

const (
	RoleNumber Role = iota
	RoleType
	RoleContent
	RoleDifficulty
	RoleAnswer
	RoleOptionA // RoleOptionA+i is option letter i
)

const (
	roleCount      = int(RoleOptionA) + questionbank.MaxOptions
	headerScanRows = 10
)

var roleKeywords = buildRoleKeywords()

func buildRoleKeywords() [roleCount][]string {
	var kw [roleCount][]string
	kw[RoleNumber] = []string{"题号", "序号", "编号", "number", "id"}
	kw[RoleType] = []string{"题型", "题目类型", "类型", "题类"}
	kw[RoleContent] = []string{"题目", "题干", "内容", "问题", "question"}
	kw[RoleDifficulty] = []string{"难度", "难易度", "difficulty"}
	kw[RoleAnswer] = []string{"答案", "正确答案", "正确选项", "answer"}
	for i, l := range questionbank.OptionLetters {
		fullWidth := width.Widen.String(l)
		kw[int(RoleOptionA)+i] = []string{"选项" + l, l + "选项", l, fullWidth}
	}
	return kw
}

// HeaderMap is the resolved header of one sheet: the header row index and
// a column index per role, -1 when a role is absent.
type HeaderMap struct {
	Row     int
	columns [roleCount]int
}

// Column returns the column index of role, or -1.
func (h HeaderMap) Column(role Role) int {
	return h.columns[role]
}

// OptionColumn returns the column of option letter position i, or -1.
func (h HeaderMap) OptionColumn(i int) int {
	return h.columns[int(RoleOptionA)+i]
}

// Cell returns the trimmed cell for role in row, or "" when the role is
// unresolved or the row is short.
func (h HeaderMap) Cell(row []string, role Role) string {
	return cellAt(row, h.columns[role])
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// ResolveHeaders locates the header row in the first rows of grid and maps
// each role to a column.
//
// A role prefers a cell that equals one of its keywords over one that only
// contains it, and a contained match never takes a column already claimed
// exactly by another role. Single-character keywords match exactly only.
func ResolveHeaders(grid [][]string) (HeaderMap, error) {
	limit := min(headerScanRows, len(grid))
	for i := 0; i < limit; i++ {
		row := grid[i]
		if hasRole(row, RoleNumber) && hasRole(row, RoleContent) {
			return resolveRow(i, row), nil
		}
	}
	return HeaderMap{Row: -1}, ErrNoHeader
}

func hasRole(row []string, role Role) bool {
	for _, cell := range row {
		if c := foldCell(cell); c != "" && (matchExact(c, role) || matchContains(c, role)) {
			return true
		}
	}
	return false
}

func resolveRow(rowIndex int, row []string) HeaderMap {
	h := HeaderMap{Row: rowIndex}
	folded := make([]string, len(row))
	for i, cell := range row {
		folded[i] = foldCell(cell)
	}

	claimed := make(map[int]bool)
	for r := range h.columns {
		h.columns[r] = -1
		for col, c := range folded {
			if c != "" && matchExact(c, Role(r)) {
				h.columns[r] = col
				claimed[col] = true
				break
			}
		}
	}

	for r := range h.columns {
		if h.columns[r] != -1 {
			continue
		}
		for col, c := range folded {
			if c != "" && !claimed[col] && matchContains(c, Role(r)) {
				h.columns[r] = col
				break
			}
		}
	}
	return h
}

func foldCell(cell string) string {
	return strings.ToLower(strings.TrimSpace(width.Narrow.String(cell)))
}

func matchExact(cell string, role Role) bool {
	for _, kw := range roleKeywords[role] {
		if cell == foldCell(kw) {
			return true
		}
	}
	return false
}

func matchContains(cell string, role Role) bool {
	for _, kw := range roleKeywords[role] {
		if utf8.RuneCountInString(kw) == 1 {
			continue
		}
		if strings.Contains(cell, foldCell(kw)) {
			return true
		}
	}
	return false
}
