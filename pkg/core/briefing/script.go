// Package briefing turns extracted disclosure records into short-form video
// briefings: an LLM-written anchor script, synthesized narration audio, a
// generated background image and an ffmpeg-composited vertical video.
package briefing

import (
	"context"
	"encoding/json"
	"fmt"

	"dartbrief/pkg/core/llm"
	"dartbrief/pkg/core/utils"
)

const scriptSystemPrompt = "당신은 경제 뉴스 전문 앵커입니다."

const scriptPromptTemplate = `당신은 경제 뉴스를 전문으로 하는 AI 앵커입니다.
내가 제공하는 기업 공시 JSON 데이터를 바탕으로, 20초 분량의 숏폼 뉴스 영상 대본을 작성해 주세요.

[규칙]
- 핵심적인 내용만 간결하게 전달해야 합니다.
- 친근하지만 전문적인 뉴스 앵커 톤을 유지해 주세요.
- 가장 중요한 수치(예: 영업이익 증가)를 강조해 주세요.
- 감탄사나 불필요한 추측은 제외하고 사실 기반으로 작성해 주세요.

[입력 데이터 (JSON)]
%s

[대본 작성 시작]
`

const scenePromptTemplate = `다음 기업 공시 JSON 데이터를 숏폼 뉴스 영상의 장면 목록으로 나눠 주세요.
각 장면은 나레이션 한 문장과 화면에 띄울 자막 한 줄로 구성됩니다.

아래 JSON 배열 형식으로만 응답하세요:
[{"narration": "...", "caption": "...", "duration_sec": 5}]

[입력 데이터 (JSON)]
%s
`

// Scene is one segment of a structured briefing script.
type Scene struct {
	Narration   string  `json:"narration"`
	Caption     string  `json:"caption"`
	DurationSec float64 `json:"duration_sec"`
}

// ScriptAgent narrates disclosure records through an LLM provider.
type ScriptAgent struct {
	provider llm.Provider
}

// NewScriptAgent creates an agent on the given provider.
func NewScriptAgent(provider llm.Provider) *ScriptAgent {
	return &ScriptAgent{provider: provider}
}

// GenerateScript produces a plain narration script for a record.
// The record is any of the extractor outputs; it is embedded in the prompt
// as indented JSON so the model sees the exact field values.
func (a *ScriptAgent) GenerateScript(ctx context.Context, record any) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode record for prompt: %w", err)
	}

	prompt := fmt.Sprintf(scriptPromptTemplate, string(data))
	response, err := a.provider.GenerateResponse(ctx, prompt, scriptSystemPrompt, nil)
	if err != nil {
		return "", fmt.Errorf("script generation failed: %w", err)
	}

	script := utils.CleanMarkdown(response)
	if script == "" {
		return "", fmt.Errorf("script generation returned empty text")
	}
	return script, nil
}

// GenerateScenes produces a structured scene list for a record. Model output
// goes through the lenient parse chain, so fenced or slightly malformed JSON
// still yields scenes.
func (a *ScriptAgent) GenerateScenes(ctx context.Context, record any) ([]Scene, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode record for prompt: %w", err)
	}

	prompt := fmt.Sprintf(scenePromptTemplate, string(data))
	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	response, err := a.provider.GenerateResponse(ctx, prompt, scriptSystemPrompt, options)
	if err != nil {
		return nil, fmt.Errorf("scene generation failed: %w", err)
	}

	var scenes []Scene
	if _, err := utils.SmartParse(utils.CleanMarkdown(response), &scenes); err != nil {
		return nil, fmt.Errorf("failed to parse scene list: %w", err)
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("scene generation returned no scenes")
	}
	return scenes, nil
}
