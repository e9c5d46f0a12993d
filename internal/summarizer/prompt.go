package summarizer

import "fmt"

// BuildPrompt assembles the fixed summary prompt embedding the new content,
// any retrieved context for the user, and the user's instructions.
func BuildPrompt(mainContent, additionalContext, userInstructions string) string {
	return fmt.Sprintf(`You are an expert email summarizer. Your task is to provide a concise and professional
summary of the main email below, considering any additional context and following the user's instructions.

### Main Email to Summarize
%s

### Summary Guidelines
1. Focus on the key points and important details.
2. Include any critical actions or requests mentioned.
3. Incorporate context from previous emails if it helps clarify or provide background.

### User Instructions
%s

### Additional Context
%s

Please provide a well-structured summary.
`, mainContent, userInstructions, additionalContext)
}
