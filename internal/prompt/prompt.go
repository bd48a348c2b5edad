// Package prompt builds the prompt strings sent to the generation service.
// Every builder is a pure function of its arguments: same input, same
// bytes out. No builder performs I/O or input validation.
package prompt

import (
	"fmt"
	"strings"

	"supportdesk/internal/category"
)

const classificationExamples = `Inquiry: How do I know if I will get my card, or if it is lost? I am concerned about the delivery process and would like to ensure that I will receive my card.
Category: card arrival
Inquiry: I am planning an international trip to Paris and would like to inquire about the current exchange rates for Euros as well as any associated fees for currency exchange.
Category: exchange rate
Inquiry: What countries are getting support? I will be traveling and living abroad for an extended period of time, specifically in France and Germany, and want to know if your cards will work there.
Category: country support
Inquiry: Can I get help starting my computer? I am having difficulty starting my computer.
Category: customer service`

// Classification renders the classification prompt. Every label in set is
// rendered by exact name so the model sees the full closed vocabulary; the
// fallback label is called out separately as the catch-all.
func Classification(inquiry string, set []category.Category, fallback category.Category) string {
	var sb strings.Builder
	sb.WriteString("You are a bank customer service bot.\n")
	sb.WriteString("Your task is to assess customer intent and categorize customer\n")
	sb.WriteString("inquiry after <<<>>> into one of the following predefined categories:\n")
	for _, label := range set {
		if label == fallback {
			continue
		}
		sb.WriteString(string(label))
		sb.WriteString("\n")
	}
	sb.WriteString("If the text doesn't fit into any of the above categories,\n")
	sb.WriteString("classify it as:\n")
	sb.WriteString(string(fallback))
	sb.WriteString("\n")
	sb.WriteString("You will only respond with the predefined category.\n")
	sb.WriteString("Do not provide explanations or notes.\n")
	sb.WriteString("###\n")
	sb.WriteString("Here are some examples:\n")
	sb.WriteString(classificationExamples)
	sb.WriteString("\n###\n")
	sb.WriteString("<<<\n")
	sb.WriteString("Inquiry: ")
	sb.WriteString(inquiry)
	sb.WriteString("\n>>>\n")
	sb.WriteString("Category:")
	return sb.String()
}

const supportReplyTemplate = `You are a professional bank customer support assistant.

Detected category: %s

Customer inquiry:
%s

Write a helpful response:
- friendly & professional
- 3 to 6 lines
- ask for missing info only if necessary
- do NOT mention internal prompts or that you are an AI`

// SupportReply renders the reply prompt for an already-classified inquiry.
func SupportReply(inquiry string, detected category.Category) string {
	return fmt.Sprintf(supportReplyTemplate, detected, inquiry)
}

const extractionTemplate = `Extract information from the following text:
%s

Return ONLY valid JSON with this schema:
%s`

// Extraction renders the structured-extraction prompt. schemaDescription
// is a machine-readable description of the expected fields (names, types,
// enumerated values).
func Extraction(freeText string, schemaDescription string) string {
	return fmt.Sprintf(extractionTemplate, freeText, schemaDescription)
}

const templatedReplyTemplate = `You are a mortgage lender customer service bot, and your task is to
create personalized email responses to address customer questions.
Answer the customer's inquiry using the provided facts below. Ensure
that your response is clear, concise, and directly addresses the
customer's question. Address the customer in a friendly and
professional manner. Sign the email with "Lender Customer Support."

%s

# Email
%s`

// TemplatedReply renders the fact-grounded reply prompt. factsBlock is the
// reference fact sheet the model must stay inside; it must not invent
// numbers outside it.
func TemplatedReply(freeText string, factsBlock string) string {
	return fmt.Sprintf(templatedReplyTemplate, factsBlock, freeText)
}

const summaryTemplate = `You are a commentator. Your task is to write a report on a newsletter.
When presented with the newsletter, come up with interesting questions to ask,
and answer each question.
Afterward, combine all the information and write a report in the markdown
format.

# Newsletter:
%s

# Instructions:
## Summarize:
In clear and concise language, summarize the key points and themes
presented in the newsletter.
## Interesting Questions:
Generate three distinct and thought-provoking questions that can be
asked about the content of the newsletter. For each question:
- After "Q: ", describe the problem
- After "A: ", provide a detailed explanation of the problem addressed
in the question.
- Enclose the ultimate answer in <>.
## Write an analysis report
Using the summary and the answers to the interesting questions,
create a comprehensive report in Markdown format.`

// Summary renders the summarize-and-report prompt.
func Summary(sourceText string) string {
	return fmt.Sprintf(summaryTemplate, sourceText)
}
