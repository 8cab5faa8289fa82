package analysis

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/healthlens/healthlens/internal/model"
)

// unavailableNarrative replaces a narrative the model failed to produce.
const unavailableNarrative = "A full interpretation of this report could not be generated. Please consult your healthcare provider for a detailed review of your results."

var (
	fenceRe       = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	unquotedKeyRe = regexp.MustCompile(`(\w+):`)
	singleQuoteRe = regexp.MustCompile(`'`)
)

// Parser converts raw model output, a narrative string and a
// JSON-expected extraction string, into an AnalysisResult. All failures
// are recovered locally: a partial report beats no report.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger uses the default.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse builds an AnalysisResult from the two raw response strings. It
// never fails; a terminally unparsable extraction yields an empty record
// set paired with the best available narrative.
func (p *Parser) Parse(narrative, extraction string) model.AnalysisResult {
	result := model.AnalysisResult{
		Narrative: strings.TrimSpace(narrative),
	}
	if result.Narrative == "" {
		result.Narrative = unavailableNarrative
	}

	rawRecords, ok := p.recoverRecords(extraction)
	if !ok {
		return result
	}

	records := make([]model.TestResult, 0, len(rawRecords))
	for _, raw := range rawRecords {
		if strings.TrimSpace(stringField(raw, "Test")) == "" {
			p.logger.Warn("Dropping extracted record without a test name")
			continue
		}
		records = append(records, NormalizeRecord(raw))
	}
	result.Records = records
	return result
}

// recoverRecords runs the salvage ladder over the extraction text: trim,
// strip markdown fences, slice out the embedded JSON array (or lone
// object), parse strictly, and on failure repair common quoting issues and
// parse once more.
func (p *Parser) recoverRecords(extraction string) ([]map[string]any, bool) {
	text := strings.TrimSpace(extraction)
	if text == "" {
		return nil, false
	}

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	if !strings.HasPrefix(text, "[") {
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]")
		if start != -1 && end > start {
			text = text[start : end+1]
		} else if start = strings.Index(text, "{"); start != -1 {
			// No array in sight; a lone object is still salvageable.
			if end = strings.LastIndex(text, "}"); end > start {
				text = text[start : end+1]
			}
		} else {
			p.logger.Error("No JSON payload found in extraction response")
			return nil, false
		}
	}

	records, err := decodeRecords(text)
	if err == nil {
		return records, true
	}

	p.logger.Warn("Extraction response is not valid JSON, attempting repair", "error", err)
	repaired := unquotedKeyRe.ReplaceAllString(text, `"$1":`)
	repaired = singleQuoteRe.ReplaceAllString(repaired, `"`)

	records, err = decodeRecords(repaired)
	if err != nil {
		p.logger.Error("Failed to parse repaired extraction response", "error", err)
		return nil, false
	}
	return records, true
}

// decodeRecords parses the payload and normalizes it to a slice of raw
// records, wrapping a lone object in a one-element slice. Non-object
// elements are skipped.
func decodeRecords(text string) ([]map[string]any, error) {
	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, err
	}

	switch v := payload.(type) {
	case []any:
		records := make([]map[string]any, 0, len(v))
		for _, elem := range v {
			if record, ok := elem.(map[string]any); ok {
				records = append(records, record)
			}
		}
		return records, nil
	case map[string]any:
		return []map[string]any{v}, nil
	default:
		return nil, nil
	}
}
