package data

import "github.com/campustrack/chatbot-go/internal/storage"

// Class types used in TimetableEntries.
const (
	ClassTheory      = "theory"
	ClassLab         = "lab"
	ClassMiniProject = "mini-project"
)

// TimetableEntries is the weekly schedule. Each section has one lab block per
// week (consecutive periods where the timetable allows) and the rest theory.
var TimetableEntries = []storage.TimetableEntry{
	// Sathish R - AIDS-A
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Sunday", Period: 7, ClassType: ClassMiniProject},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Wednesday", Period: 5, ClassType: ClassTheory},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Wednesday", Period: 7, ClassType: ClassTheory},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Thursday", Period: 7, ClassType: ClassLab},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Thursday", Period: 8, ClassType: ClassLab},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Thursday", Period: 9, ClassType: ClassLab},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Friday", Period: 5, ClassType: ClassTheory},
	{FacultyID: 1, DepartmentCode: "AIDS-A", Day: "Saturday", Period: 7, ClassType: ClassTheory},

	// Sikkandhar Batcha J - AIDS-B
	{FacultyID: 2, DepartmentCode: "AIDS-B", Day: "Monday", Period: 3, ClassType: ClassTheory},
	{FacultyID: 2, DepartmentCode: "AIDS-B", Day: "Tuesday", Period: 5, ClassType: ClassTheory},
	{FacultyID: 2, DepartmentCode: "AIDS-B", Day: "Wednesday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 2, DepartmentCode: "AIDS-B", Day: "Thursday", Period: 6, ClassType: ClassTheory},
	{FacultyID: 2, DepartmentCode: "AIDS-B", Day: "Friday", Period: 4, ClassType: ClassLab},

	// Anitha M - AIML-A
	{FacultyID: 3, DepartmentCode: "AIML-A", Day: "Monday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 3, DepartmentCode: "AIML-A", Day: "Tuesday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 3, DepartmentCode: "AIML-A", Day: "Wednesday", Period: 6, ClassType: ClassTheory},
	{FacultyID: 3, DepartmentCode: "AIML-A", Day: "Thursday", Period: 3, ClassType: ClassTheory},
	{FacultyID: 3, DepartmentCode: "AIML-A", Day: "Friday", Period: 1, ClassType: ClassLab},

	// Aruna R - AIML-B
	{FacultyID: 4, DepartmentCode: "AIML-B", Day: "Monday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 4, DepartmentCode: "AIML-B", Day: "Tuesday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 4, DepartmentCode: "AIML-B", Day: "Wednesday", Period: 3, ClassType: ClassTheory},
	{FacultyID: 4, DepartmentCode: "AIML-B", Day: "Thursday", Period: 5, ClassType: ClassTheory},
	{FacultyID: 4, DepartmentCode: "AIML-B", Day: "Friday", Period: 6, ClassType: ClassLab},

	// Janani S - CSBS
	{FacultyID: 5, DepartmentCode: "CSBS", Day: "Monday", Period: 1, ClassType: ClassTheory},
	{FacultyID: 5, DepartmentCode: "CSBS", Day: "Tuesday", Period: 3, ClassType: ClassTheory},
	{FacultyID: 5, DepartmentCode: "CSBS", Day: "Wednesday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 5, DepartmentCode: "CSBS", Day: "Thursday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 5, DepartmentCode: "CSBS", Day: "Friday", Period: 7, ClassType: ClassLab},

	// Indhumathi S - CSE-A
	{FacultyID: 6, DepartmentCode: "CSE-A", Day: "Monday", Period: 5, ClassType: ClassTheory},
	{FacultyID: 6, DepartmentCode: "CSE-A", Day: "Tuesday", Period: 1, ClassType: ClassTheory},
	{FacultyID: 6, DepartmentCode: "CSE-A", Day: "Wednesday", Period: 7, ClassType: ClassTheory},
	{FacultyID: 6, DepartmentCode: "CSE-A", Day: "Thursday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 6, DepartmentCode: "CSE-A", Day: "Friday", Period: 2, ClassType: ClassLab},

	// Saranya S - CSE-B
	{FacultyID: 7, DepartmentCode: "CSE-B", Day: "Monday", Period: 6, ClassType: ClassTheory},
	{FacultyID: 7, DepartmentCode: "CSE-B", Day: "Tuesday", Period: 6, ClassType: ClassTheory},
	{FacultyID: 7, DepartmentCode: "CSE-B", Day: "Wednesday", Period: 1, ClassType: ClassTheory},
	{FacultyID: 7, DepartmentCode: "CSE-B", Day: "Thursday", Period: 7, ClassType: ClassTheory},
	{FacultyID: 7, DepartmentCode: "CSE-B", Day: "Friday", Period: 3, ClassType: ClassLab},

	// Anusha S - CYS
	{FacultyID: 8, DepartmentCode: "CYS", Day: "Monday", Period: 7, ClassType: ClassTheory},
	{FacultyID: 8, DepartmentCode: "CYS", Day: "Tuesday", Period: 7, ClassType: ClassTheory},
	{FacultyID: 8, DepartmentCode: "CYS", Day: "Wednesday", Period: 8, ClassType: ClassTheory},
	{FacultyID: 8, DepartmentCode: "CYS", Day: "Thursday", Period: 1, ClassType: ClassTheory},
	{FacultyID: 8, DepartmentCode: "CYS", Day: "Friday", Period: 8, ClassType: ClassLab},

	// Kiruthikaa R - ECE-A
	{FacultyID: 9, DepartmentCode: "ECE-A", Day: "Monday", Period: 8, ClassType: ClassTheory},
	{FacultyID: 9, DepartmentCode: "ECE-A", Day: "Tuesday", Period: 8, ClassType: ClassTheory},
	{FacultyID: 9, DepartmentCode: "ECE-A", Day: "Wednesday", Period: 9, ClassType: ClassTheory},
	{FacultyID: 9, DepartmentCode: "ECE-A", Day: "Thursday", Period: 8, ClassType: ClassTheory},
	{FacultyID: 9, DepartmentCode: "ECE-A", Day: "Friday", Period: 9, ClassType: ClassLab},

	// Janani R - ECE-B
	{FacultyID: 10, DepartmentCode: "ECE-B", Day: "Monday", Period: 9, ClassType: ClassTheory},
	{FacultyID: 10, DepartmentCode: "ECE-B", Day: "Tuesday", Period: 9, ClassType: ClassTheory},
	{FacultyID: 10, DepartmentCode: "ECE-B", Day: "Thursday", Period: 9, ClassType: ClassTheory},
	{FacultyID: 10, DepartmentCode: "ECE-B", Day: "Friday", Period: 5, ClassType: ClassMiniProject},
	{FacultyID: 10, DepartmentCode: "ECE-B", Day: "Saturday", Period: 1, ClassType: ClassLab},

	// Venkatesh Babu S - IT-A
	{FacultyID: 11, DepartmentCode: "IT-A", Day: "Monday", Period: 3, ClassType: ClassTheory},
	{FacultyID: 11, DepartmentCode: "IT-A", Day: "Wednesday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 11, DepartmentCode: "IT-A", Day: "Thursday", Period: 6, ClassType: ClassTheory},
	{FacultyID: 11, DepartmentCode: "IT-A", Day: "Saturday", Period: 2, ClassType: ClassLab},
	{FacultyID: 11, DepartmentCode: "IT-A", Day: "Saturday", Period: 3, ClassType: ClassLab},

	// Dhamayanthi P - IT-B
	{FacultyID: 12, DepartmentCode: "IT-B", Day: "Monday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 12, DepartmentCode: "IT-B", Day: "Tuesday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 12, DepartmentCode: "IT-B", Day: "Wednesday", Period: 6, ClassType: ClassTheory},
	{FacultyID: 12, DepartmentCode: "IT-B", Day: "Saturday", Period: 4, ClassType: ClassLab},
	{FacultyID: 12, DepartmentCode: "IT-B", Day: "Saturday", Period: 5, ClassType: ClassLab},

	// Pradeep G - MECH
	{FacultyID: 13, DepartmentCode: "MECH", Day: "Monday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 13, DepartmentCode: "MECH", Day: "Tuesday", Period: 2, ClassType: ClassTheory},
	{FacultyID: 13, DepartmentCode: "MECH", Day: "Wednesday", Period: 3, ClassType: ClassTheory},
	{FacultyID: 13, DepartmentCode: "MECH", Day: "Saturday", Period: 6, ClassType: ClassLab},
	{FacultyID: 13, DepartmentCode: "MECH", Day: "Saturday", Period: 8, ClassType: ClassLab},

	// Madhan S - RA
	{FacultyID: 14, DepartmentCode: "RA", Day: "Monday", Period: 5, ClassType: ClassTheory},
	{FacultyID: 14, DepartmentCode: "RA", Day: "Tuesday", Period: 1, ClassType: ClassTheory},
	{FacultyID: 14, DepartmentCode: "RA", Day: "Wednesday", Period: 4, ClassType: ClassTheory},
	{FacultyID: 14, DepartmentCode: "RA", Day: "Saturday", Period: 7, ClassType: ClassLab},
	{FacultyID: 14, DepartmentCode: "RA", Day: "Saturday", Period: 9, ClassType: ClassLab},
}
