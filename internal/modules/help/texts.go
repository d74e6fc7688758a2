package help

import "fmt"

// GreetingText welcomes the user and points at the help command.
const GreetingText = `👋 **Hello! Welcome to C Programming Assistant!**

I can help you with:
• Today's class schedule
• Faculty information
• Lab programs
• Session/PPT materials
• FAQs

Type **help** to see all commands!`

// HelpText lists example questions for every supported query family.
const HelpText = `📚 **C Programming Chatbot - Help**

**Schedule Queries:**
• "Who has class today?"
• "Show today's complete schedule"
• "Monday schedule" / "Friday schedule"
• "Who is absent today?"
• "When does Sathish have class?"

**Lab Programs:**
• "Lab program for week 5"
• "Show week 3 lab" / "W3 lab"
• "Moodle link for week 2"

**Session Materials:**
• "PPT for session 3"
• "Show deck 5" / "Session 7 slides"

**Faculty Information:**
• "Who is teaching AIDS-A?"
• "Faculty for CSE-B today"
• "List all faculties"

**Teaching History:**
• "What was taught recently?"
• "Show recent classes"

Just ask naturally - I understand variations!`

// DefaultText is the end-of-cascade answer. It always names today's
// weekday so the user can tell which day unanchored questions resolve to.
func DefaultText(day string) string {
	return fmt.Sprintf(`🤔 I couldn't find an answer to that question.

Today is **%s**. Try asking about:
• Today's schedule
• Faculty information
• Lab programs (e.g., "week 3 lab")
• Session materials (e.g., "session 5 ppt")

Or type **help** for more options!`, day)
}
