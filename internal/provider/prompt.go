package provider

import (
	"fmt"
	"strings"
)

// AnalysisPrompt builds the instruction text for a single-entry analysis.
func AnalysisPrompt(req AnalysisRequest) string {
	return fmt.Sprintf(`너는 감정 일기 코치야.
아래 일기를 읽고 반드시 "JSON만" 출력해. 다른 문장은 절대 금지.

[입력]
- 사용자가 선택한 기분: %s
- 감정 태그: %s
- 일기:
%s

[출력 JSON 스키마]
{
  "summary": "오늘 감정 핵심 1~2문장 요약",
  "trigger_pattern": "텍스트에서 추정되는 트리거/패턴 1~2문장",
  "hashtags": ["#키워드1", "#키워드2", "#키워드3"],
  "actions": ["짧고 구체적인 행동 1", "짧고 구체적인 행동 2", "짧고 구체적인 행동 3"],
  "mission_summary": "위 3가지 미션을 아우르는 1줄 문장",
  "full_text": "사용자에게 건네는 따뜻한 분석/코칭(3~6문장, 과한 의학/진단 금지)"
}

[강제 규칙]
- actions는 반드시 3개(부득이하면 최소 1개, 최대 3개)
- 각 action은 20자 내외로 짧고, 지금 당장 가능한 행동만
- hashtags는 0~5개, 반드시 #으로 시작
- 의학적 진단/치료 지시 금지
- JSON 외 다른 텍스트 출력 금지`,
		req.MoodLabel, strings.Join(req.Tags, ", "), strings.TrimSpace(req.DiaryText))
}

// MonthlyPrompt builds the instruction text for a monthly digest.
func MonthlyPrompt(req MonthlyRequest) string {
	return fmt.Sprintf(`너는 감정 일기 코치야.
아래 한 달치 일기 요약 입력을 바탕으로 반드시 "JSON만" 출력해. 다른 문장은 절대 금지.

[입력]
- 대상 월: %s
- 이번 달 최빈 감정: %s
- 월간 일기 요약 입력(날짜/기분/태그/내용 요약):
%s

[출력 JSON 스키마]
{
  "one_line_summary": "한 줄 요약(강조 박스) 1문장",
  "detail_summary": "상세 요약 본문(3~7문장, 줄바꿈 허용)",
  "emotion_flow": "감정 흐름 한 줄(예: 안정 → 지침 → 회복)",
  "keywords": ["키워드1", "키워드2", "키워드3"]
}

[강제 규칙]
- one_line_summary는 40자 내외 1문장
- detail_summary는 3~7문장, 과한 의학/진단 금지
- emotion_flow는 너무 길지 않게(20자 내외) "A → B → C" 형태 추천
- keywords는 0~3개(가능하면 3개), 중복 금지, 너무 추상적인 단어 금지
- JSON 외 다른 텍스트 출력 금지`,
		req.YearMonth, req.DominantMoodLabel, req.EntriesBrief)
}
