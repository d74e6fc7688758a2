package data

import "github.com/campustrack/chatbot-go/internal/storage"

// SyllabusSessions is the 53-session syllabus across 7 units. Subtopics and
// PPT links start empty and are filled in by faculty over the semester.
var SyllabusSessions = []storage.SyllabusSession{
	// Unit 1 - Introduction
	{SessionNumber: 1, Title: "Introduction to C Programming", Unit: 1},
	{SessionNumber: 2, Title: "History and Features of C", Unit: 1},
	{SessionNumber: 3, Title: "Structure of C Program", Unit: 1},
	{SessionNumber: 4, Title: "Compilation and Execution", Unit: 1},
	{SessionNumber: 5, Title: "Variables and Constants", Unit: 1},
	{SessionNumber: 6, Title: "Data Types in C", Unit: 1},
	{SessionNumber: 7, Title: "Operators in C", Unit: 1},
	{SessionNumber: 8, Title: "Type Conversion and Casting", Unit: 1},

	// Unit 2 - Control Statements
	{SessionNumber: 9, Title: "Decision Making - if statement", Unit: 2},
	{SessionNumber: 10, Title: "Decision Making - if-else statement", Unit: 2},
	{SessionNumber: 11, Title: "Decision Making - nested if-else", Unit: 2},
	{SessionNumber: 12, Title: "Decision Making - switch statement", Unit: 2},
	{SessionNumber: 13, Title: "Loops - for loop", Unit: 2},
	{SessionNumber: 14, Title: "Loops - while loop", Unit: 2},
	{SessionNumber: 15, Title: "Loops - do-while loop", Unit: 2},
	{SessionNumber: 16, Title: "Break and Continue statements", Unit: 2},
	{SessionNumber: 17, Title: "Goto statement", Unit: 2},

	// Unit 3 - Arrays and Strings
	{SessionNumber: 18, Title: "Introduction to Arrays", Unit: 3},
	{SessionNumber: 19, Title: "One Dimensional Arrays", Unit: 3},
	{SessionNumber: 20, Title: "Two Dimensional Arrays", Unit: 3},
	{SessionNumber: 21, Title: "Multi Dimensional Arrays", Unit: 3},
	{SessionNumber: 22, Title: "Introduction to Strings", Unit: 3},
	{SessionNumber: 23, Title: "String Functions", Unit: 3},
	{SessionNumber: 24, Title: "String Manipulation Programs", Unit: 3},

	// Unit 4 - Functions
	{SessionNumber: 25, Title: "Introduction to Functions", Unit: 4},
	{SessionNumber: 26, Title: "Function Declaration and Definition", Unit: 4},
	{SessionNumber: 27, Title: "Function Call - Call by Value", Unit: 4},
	{SessionNumber: 28, Title: "Function Call - Call by Reference", Unit: 4},
	{SessionNumber: 29, Title: "Recursion", Unit: 4},
	{SessionNumber: 30, Title: "Storage Classes", Unit: 4},

	// Unit 5 - Pointers
	{SessionNumber: 31, Title: "Introduction to Pointers", Unit: 5},
	{SessionNumber: 32, Title: "Pointer Declaration and Initialization", Unit: 5},
	{SessionNumber: 33, Title: "Pointer Arithmetic", Unit: 5},
	{SessionNumber: 34, Title: "Pointers and Arrays", Unit: 5},
	{SessionNumber: 35, Title: "Pointers and Strings", Unit: 5},
	{SessionNumber: 36, Title: "Pointers and Functions", Unit: 5},
	{SessionNumber: 37, Title: "Pointer to Pointer", Unit: 5},
	{SessionNumber: 38, Title: "Dynamic Memory Allocation", Unit: 5},

	// Unit 6 - Structures and Unions
	{SessionNumber: 39, Title: "Introduction to Structures", Unit: 6},
	{SessionNumber: 40, Title: "Structure Declaration and Initialization", Unit: 6},
	{SessionNumber: 41, Title: "Accessing Structure Members", Unit: 6},
	{SessionNumber: 42, Title: "Array of Structures", Unit: 6},
	{SessionNumber: 43, Title: "Nested Structures", Unit: 6},
	{SessionNumber: 44, Title: "Structures and Functions", Unit: 6},
	{SessionNumber: 45, Title: "Structures and Pointers", Unit: 6},
	{SessionNumber: 46, Title: "Introduction to Unions", Unit: 6},
	{SessionNumber: 47, Title: "Difference between Structure and Union", Unit: 6},

	// Unit 7 - File Handling
	{SessionNumber: 48, Title: "Introduction to File Handling", Unit: 7},
	{SessionNumber: 49, Title: "File Opening and Closing", Unit: 7},
	{SessionNumber: 50, Title: "Reading from Files", Unit: 7},
	{SessionNumber: 51, Title: "Writing to Files", Unit: 7},
	{SessionNumber: 52, Title: "File Positioning", Unit: 7},
	{SessionNumber: 53, Title: "Error Handling in Files", Unit: 7},
}
