package chain

import (
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// GrammarTemperature 语法修正使用的固定低温度，不受配置影响
const GrammarTemperature float32 = 0.1

// 模板使用 FString 语法，正文中不能出现字面量花括号
const (
	rephrasePrompt = `Please rephrase the following text to express a {mood} mood or tone.
Keep the core meaning intact, but adjust the language, word choice, and expression to reflect that tone. Do not explain what you have changed, just give the result and try to be precise. Try to make it the same length as the original text.

Original text: {text}

Rephrased text with {mood} mood:`

	grammarPrompt = `Please fix any grammatical errors in the following text.
Keep the meaning and tone exactly the same, only correct grammar mistakes.
Return only the corrected text without any explanations.

Original text: {text}

Corrected text:`
)

func newRephraseTemplate() prompt.ChatTemplate {
	return prompt.FromMessages(schema.FString, schema.UserMessage(rephrasePrompt))
}

func newGrammarTemplate() prompt.ChatTemplate {
	return prompt.FromMessages(schema.FString, schema.UserMessage(grammarPrompt))
}
