package ingest

import (
	"log/slog"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/spreadsheet"
)

// NormalizeSheets builds one bank from every data sheet, in workbook order.
// Sheets without a header row or without a content column are skipped. Ids
// run across sheets, ordered by sheet then row.
func NormalizeSheets(sheets []spreadsheet.Sheet, logger *slog.Logger) *questionbank.QuestionBank {
	if logger == nil {
		logger = slog.Default()
	}
	bank := questionbank.New()

	for _, sheet := range sheets {
		header, err := ResolveHeaders(sheet.Rows)
		if err != nil {
			logger.Debug("skipping sheet", "sheet", sheet.Name, "reason", err)
			continue
		}
		if header.Column(RoleContent) < 0 {
			logger.Debug("skipping sheet", "sheet", sheet.Name, "reason", "no content column")
			continue
		}

		for i := header.Row + 1; i < len(sheet.Rows); i++ {
			row := sheet.Rows[i]
			q := questionbank.Question{
				Type:       header.Cell(row, RoleType),
				Content:    header.Cell(row, RoleContent),
				Answer:     header.Cell(row, RoleAnswer),
				Options:    questionbank.Options{},
				Difficulty: header.Cell(row, RoleDifficulty),
				SheetName:  sheet.Name,
				RawIndex:   i,
			}
			if q.Type == "" {
				q.Type = questionbank.TypeUnknown
			}
			for j, letter := range questionbank.OptionLetters {
				if text := cellAt(row, header.OptionColumn(j)); text != "" {
					q.Options[letter] = text
				}
			}

			// Rows with a blank content cell are not questions.
			if err := bank.AddQuestion(q); err != nil {
				continue
			}
		}
	}
	return bank
}
