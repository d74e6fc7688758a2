package data

import "github.com/campustrack/chatbot-go/internal/storage"

// FAQs is the starter FAQ catalog. Admins add and retire entries at runtime;
// retired entries keep their IDs and are marked inactive.
var FAQs = []storage.FAQEntry{
	{ID: 1, Question: "What is the subject code for C Programming?", Answer: "The subject code is 24UCS271 and the subject name is C Programming.", IsActive: true},
	{ID: 2, Question: "What is the passing criteria for C Programming?", Answer: "You need a minimum of 50% combining internal assessments and the end semester exam. Lab attendance is mandatory.", IsActive: true},
	{ID: 3, Question: "Where can I find the lab manual and exercise sheets?", Answer: "The lab manual and weekly exercise sheets are published on Moodle under the C Programming course page. You can also ask me for a specific week, for example 'lab program for week 3'.", IsActive: true},
	{ID: 4, Question: "When are the internal assessments conducted?", Answer: "Internal assessments are conducted in weeks 6, 11 and 15 of the semester. Exact dates are announced on the notice board and Moodle.", IsActive: true},
	{ID: 5, Question: "How many units does the C Programming syllabus have?", Answer: "The syllabus has 7 units covering 53 sessions: Introduction, Control Statements, Arrays and Strings, Functions, Pointers, Structures and Unions, and File Handling.", IsActive: true},
	{ID: 6, Question: "Where do I get the PPT slides for a session?", Answer: "Session slides are linked from the syllabus once uploaded. Ask me for a session directly, for example 'PPT for session 5', and I will share the link if it is available.", IsActive: true},
	{ID: 7, Question: "What is the attendance requirement?", Answer: "A minimum of 75% attendance is required to be eligible for the end semester exam, as per university norms.", IsActive: true},
	{ID: 8, Question: "Which compiler should I use for the lab?", Answer: "The lab machines use GCC on Linux. Any standards-compliant C compiler (GCC, Clang or MinGW on Windows) is fine for practice at home.", IsActive: true},
}
