package answer

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed answers.yaml
var answersFS embed.FS

// FallbackTable 는 정규화된 질문에서 고정 단답으로의 매핑이다.
// 로드 이후에는 읽기 전용이다.
type FallbackTable struct {
	answers map[string]string
}

// LoadFallbackTable 는 내장 answers.yaml 을 로드한다.
func LoadFallbackTable() (*FallbackTable, error) {
	data, err := answersFS.ReadFile("answers.yaml")
	if err != nil {
		return nil, fmt.Errorf("read fallback file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse fallback yaml: %w", err)
	}

	answers := make(map[string]string, len(raw))
	for question, canned := range raw {
		key := NormalizeQuestion(question)
		canned = strings.TrimSpace(canned)
		if key == "" || canned == "" {
			return nil, fmt.Errorf("empty fallback entry: %q", question)
		}
		answers[key] = canned
	}

	return &FallbackTable{answers: answers}, nil
}

// Lookup 는 질문을 정규화해 고정 단답을 찾는다.
func (t *FallbackTable) Lookup(question string) (string, bool) {
	if t == nil {
		return "", false
	}
	canned, ok := t.answers[NormalizeQuestion(question)]
	return canned, ok
}

// Size 는 테이블 항목 수를 반환한다.
func (t *FallbackTable) Size() int {
	if t == nil {
		return 0
	}
	return len(t.answers)
}
