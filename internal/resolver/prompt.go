package resolver

import (
	"fmt"

	"github.com/quizd/quizd/internal/provider"
)

// basePrompt forces a bare machine-parseable JSON reply. Every question type
// shares it; the per-type rules below only constrain the answer's shape.
const basePrompt = `你是一个题库接口函数,你的输出严格使用此格式回答:{"answer":"your_answer_str"},不回答:"嗯","好的","我知道了"之类的话。回答只能是json。绝对不要使用自然语言,并且不要使用转义字符。`

// typeRules maps each known question type to its output-shape rule. Multiple
// selected options are joined with #, multiple blanks with ###.
var typeRules = map[string]string{
	"single":     `当前是单选题，直接返回对应选项的内容，不是对应答案字母`,
	"multiple":   `当前是多选题，直接返回对应选项的内容，不是对应答案字母，将内容用#连接`,
	"judgement":  `当前是判断题，直接返回"对"或"错"的文字，不返回字母，题目为英文时返回"true"或"false"`,
	"completion": `当前是填空题，直接返回填空内容，多个空使用###连接`,
	"line":       `当前是连线题，按左侧顺序依次返回右侧对应选项的内容，将内容用#连接`,
	"fill":       `当前是完形填空题，按顺序直接返回每个空的内容，多个空使用###连接`,
	"reader":     `当前是阅读理解题，按小题顺序直接返回每题答案的内容，多个答案使用###连接`,
}

// SystemPrompt returns the instruction for one question type. A pure function
// of the type: the same type always yields the byte-identical prompt, and an
// unknown type falls back to the bare base prompt.
func SystemPrompt(qtype string) string {
	rule, ok := typeRules[qtype]
	if !ok {
		return basePrompt
	}
	return basePrompt + rule
}

// buildMessages composes the two-message exchange sent upstream: the system
// instruction, then the question payload. Completion questions carry no
// options text; every other type does.
func buildMessages(q Question) []provider.Message {
	userContent := fmt.Sprintf("题目：%s,选项：%s", q.Title, q.Options)
	if q.Type == "completion" {
		userContent = fmt.Sprintf("题目：%s", q.Title)
	}

	return []provider.Message{
		{Role: provider.RoleSystem, Content: SystemPrompt(q.Type)},
		{Role: provider.RoleUser, Content: userContent},
	}
}
