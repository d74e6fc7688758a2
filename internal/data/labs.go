package data

import "github.com/campustrack/chatbot-go/internal/storage"

// LabPrograms is the weekly lab exercise list. Moodle links are filled in by
// faculty once the exercise sheet is published.
var LabPrograms = []storage.LabProgram{
	{ProgramNumber: 1, Title: "Basic Input and Output", Description: "Write C programs using printf and scanf to read values of different data types and print them with format specifiers."},
	{ProgramNumber: 2, Title: "Operators and Expressions", Description: "Write C programs to evaluate arithmetic, relational and logical expressions, including a simple calculator using operators."},
	{ProgramNumber: 3, Title: "Decision Making", Description: "Write C programs using if, if-else and switch statements: largest of three numbers, leap year check and a menu-driven grade calculator."},
	{ProgramNumber: 4, Title: "Loops and Patterns", Description: "Write C programs using for, while and do-while loops to print number series, factorials and star patterns."},
	{ProgramNumber: 5, Title: "One Dimensional Arrays", Description: "Write C programs for array traversal, finding minimum and maximum, linear search and bubble sort."},
	{ProgramNumber: 6, Title: "Two Dimensional Arrays", Description: "Write C programs for matrix addition, transpose and matrix multiplication."},
	{ProgramNumber: 7, Title: "Strings", Description: "Write C programs for string reversal, palindrome check and counting vowels without using library functions."},
	{ProgramNumber: 8, Title: "Functions and Recursion", Description: "Write C programs using user-defined functions, call by value and recursion for Fibonacci and GCD."},
	{ProgramNumber: 9, Title: "Pointers", Description: "Write C programs using pointers for swapping values, array traversal and dynamic memory allocation with malloc and free."},
	{ProgramNumber: 10, Title: "Structures and Files", Description: "Write C programs using structures for a student record system and file handling to save and load the records."},
}
