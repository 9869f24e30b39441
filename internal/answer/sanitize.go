package answer

import (
	"strings"
	"unicode"
)

// NAAnswer 는 정제 후 토큰이 남지 않을 때의 대체 답이다.
const NAAnswer = "N/A"

// SanitizeOneWord 는 모델 출력에서 단일 단어를 추려낸다.
// 개행/탭은 공백으로, 하이픈을 제외한 기호는 모두 공백으로 치환한 뒤
// 첫 번째 토큰을 반환한다.
func SanitizeOneWord(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			return r
		}
		return ' '
	}, text)

	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return NAAnswer
	}
	return fields[0]
}

// NormalizeQuestion 는 질문을 소문자화하고 구두점을 제거한 뒤 공백을 접는다.
// fallback 테이블의 키 형식이다.
func NormalizeQuestion(question string) string {
	lowered := strings.ToLower(question)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, lowered)
	return strings.Join(strings.Fields(cleaned), " ")
}
