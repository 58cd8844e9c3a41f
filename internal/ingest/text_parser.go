package ingest

import (
	"regexp"
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// NoAnswerSentinel is stored as the answer of a fill-in question whose blank
// could not be located.
const NoAnswerSentinel = "（未识别到答案）"

// Section header keywords and the type each one switches to.
var sectionHeaders = []struct {
	keyword string
	typ     string
}{
	{"填空题", questionbank.TypeFillBlank},
	{"单项选择题", questionbank.TypeSingle},
	{"多项选择题", questionbank.TypeMultiple},
	{"判断题", questionbank.TypeTrueFalse},
	{"问答题", questionbank.TypeShortAnswer},
}

var (
	questionStart = regexp.MustCompile(`^(\d+)\s*[.、．](.*)$`)

	singleMarker   = regexp.MustCompile(`[(（]\s*([A-I√✓xX✗×])\s*[)）]`)
	multipleMarker = regexp.MustCompile(`[(（]\s*([A-I][A-I,，、\s]*)[)）]`)

	blankToken    = regexp.MustCompile(`\s+([^\s，。：]+)\s+`)
	trailingDigit = regexp.MustCompile(`(\d+[\d\-.~/]*\d*)$`)

	optionMarker = regexp.MustCompile(`(?:^|\s)([A-I])\s*[.、．]`)
)

var glyphAnswers = map[string]string{
	"√": "A", "✓": "A",
	"x": "B", "X": "B", "✗": "B", "×": "B",
}

// textParser holds the single-pass state of ParseText.
type textParser struct {
	bank        *questionbank.QuestionBank
	types       *questionbank.TypeSet
	currentType string
	current     *questionbank.Question
	answering   bool // short-answer body has started
	nextID      int
}

// ParseText parses the delimited plain-text grammar into a bank. It never
// fails: lines that match no rule are skipped without touching state.
func ParseText(text string) *questionbank.QuestionBank {
	p := &textParser{
		bank:   questionbank.New(),
		types:  questionbank.NewTypeSet(),
		nextID: 1,
	}
	text = strings.TrimPrefix(text, "\ufeff")
	for i, line := range strings.Split(text, "\n") {
		p.line(i+1, strings.TrimSpace(line))
	}
	p.flush()
	p.bank.QuestionTypes = p.types.List()
	return p.bank
}

func (p *textParser) line(lineNo int, line string) {
	if line == "" {
		return
	}
	for _, h := range sectionHeaders {
		if strings.Contains(line, h.keyword) {
			p.currentType = h.typ
			return
		}
	}

	if m := questionStart.FindStringSubmatch(line); m != nil {
		p.flush()
		p.start(lineNo, m[2])
		return
	}

	if p.current == nil {
		return
	}

	switch p.currentType {
	case questionbank.TypeSingle, questionbank.TypeMultiple:
		p.options(line)
	case questionbank.TypeShortAnswer:
		p.shortAnswer(line)
	}
}

// start opens a question from the text after its number. raw keeps its
// leading whitespace, which bounds a fill-in answer written as the first word.
func (p *textParser) start(lineNo int, raw string) {
	content := strings.TrimSpace(raw)
	q := &questionbank.Question{
		ID:       p.nextID,
		Type:     p.currentType,
		Content:  content,
		Options:  questionbank.Options{},
		RawIndex: lineNo,
	}
	p.nextID++
	p.answering = false

	switch q.Type {
	case questionbank.TypeSingle, questionbank.TypeTrueFalse:
		if loc := singleMarker.FindStringSubmatchIndex(content); loc != nil {
			raw := content[loc[2]:loc[3]]
			if letter, ok := glyphAnswers[raw]; ok {
				q.Answer = letter
			} else {
				q.Answer = raw
			}
			q.Content = content[:loc[0]] + questionbank.MarkerPlaceholder + content[loc[1]:]
		}
		if q.Type == questionbank.TypeTrueFalse {
			q.Options = questionbank.TrueFalseOptions()
		}

	case questionbank.TypeMultiple:
		if loc := multipleMarker.FindStringSubmatchIndex(content); loc != nil {
			q.Answer = questionbank.NormalizeLetters(content[loc[2]:loc[3]])
			q.Content = content[:loc[0]] + questionbank.MarkerPlaceholder + content[loc[1]:]
		}

	case questionbank.TypeFillBlank:
		answer := ""
		if loc := blankToken.FindStringSubmatchIndex(raw); loc != nil {
			answer = raw[loc[2]:loc[3]]
			q.Content = strings.TrimSpace(raw[:loc[2]] + questionbank.BlankPlaceholder + raw[loc[3]:])
		} else if loc := trailingDigit.FindStringSubmatchIndex(content); loc != nil {
			answer = content[loc[2]:loc[3]]
			q.Content = content[:loc[2]] + questionbank.BlankPlaceholder + content[loc[3]:]
		}
		if answer == "" {
			answer = NoAnswerSentinel
		}
		q.Options["A"] = answer
	}

	p.current = q
}

// options assigns every "<letter><sep><text>" run on the line. Each text
// runs up to the next marker.
func (p *textParser) options(line string) {
	locs := optionMarker.FindAllStringSubmatchIndex(line, questionbank.MaxOptions)
	for i, loc := range locs {
		end := len(line)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := strings.TrimSpace(line[loc[1]:end])
		if text == "" {
			continue
		}
		p.current.Options[line[loc[2]:loc[3]]] = text
	}
}

func (p *textParser) shortAnswer(line string) {
	for _, prefix := range []string{"答:", "答："} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			p.current.Options["A"] = strings.TrimSpace(rest)
			p.answering = true
			return
		}
	}
	if !p.answering {
		return
	}
	if p.current.Options["A"] == "" {
		p.current.Options["A"] = line
		return
	}
	p.current.Options["A"] += "\n" + line
}

func (p *textParser) flush() {
	if p.current == nil {
		return
	}
	p.bank.Questions = append(p.bank.Questions, *p.current)
	p.types.Add(p.current.Type)
	p.current = nil
}
