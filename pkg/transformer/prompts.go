package transformer

import "github.com/raglabs/querykit-go/pkg/prompt"

// DefaultExpandingTemplateText is the default prompt for the expanding
// transformer. It asks the model for {{n}} alternative phrasings of
// {{query}}, one per line, without enumeration or extra formatting. The
// one-per-line instruction is a request to the model, not an enforced
// contract; ParseLines accepts whatever comes back.
const DefaultExpandingTemplateText = `Generate {{n}} different versions of a provided user query. ` +
	`Each version should be worded differently, using synonyms or alternative sentence structures, ` +
	`but they should all retain the original meaning. ` +
	`These versions will be used to retrieve relevant documents. ` +
	`It is very important to provide each query version on a separate line, ` +
	`without enumerations, hyphens, or any additional formatting!
User query: {{query}}`

// DefaultCompressingTemplateText is the default prompt for the compressing
// transformer. It asks the model to fold prior conversation turns into one
// standalone query.
const DefaultCompressingTemplateText = `Read the conversation below and the follow-up query, ` +
	`then rewrite the follow-up query as a single self-contained query that needs no conversation context to be understood. ` +
	`Resolve pronouns and implicit references using the conversation. ` +
	`Output only the rewritten query, without explanations or formatting.

Conversation:
{{chat_history}}

Follow-up query: {{query}}`

// DefaultExpandingTemplate is DefaultExpandingTemplateText as a parsed
// template, used when no explicit template is configured.
var DefaultExpandingTemplate = prompt.MustNew(DefaultExpandingTemplateText)

// DefaultCompressingTemplate is DefaultCompressingTemplateText as a parsed
// template, used when no explicit template is configured.
var DefaultCompressingTemplate = prompt.MustNew(DefaultCompressingTemplateText)
