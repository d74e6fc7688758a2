// Package data provides the static seed dataset for the C Programming course:
// departments, faculty, the weekly timetable, the session syllabus, lab
// programs and the starter FAQ catalog. The data is maintained manually and
// loaded into the database by cmd/seed.
package data

import "github.com/campustrack/chatbot-go/internal/storage"

// Course identity stamped on every timetable row.
const (
	SubjectCode = "24UCS271"
	SubjectName = "C Programming"
)

// Departments lists every section taking the course. IDs are stable and are
// referenced by the faculty records and timetable entries below.
var Departments = []storage.Department{
	{ID: 1, Name: "B.Tech AI&DS - A", Code: "AIDS-A"},
	{ID: 2, Name: "B.Tech AI&DS - B", Code: "AIDS-B"},
	{ID: 3, Name: "B.Tech AI&ML - A", Code: "AIML-A"},
	{ID: 4, Name: "B.Tech AI&ML - B", Code: "AIML-B"},
	{ID: 5, Name: "B.Tech CSBS", Code: "CSBS"},
	{ID: 6, Name: "B.Tech CSE - A", Code: "CSE-A"},
	{ID: 7, Name: "B.Tech CSE - B", Code: "CSE-B"},
	{ID: 8, Name: "B.Tech CYS", Code: "CYS"},
	{ID: 9, Name: "B.Tech ECE - A", Code: "ECE-A"},
	{ID: 10, Name: "B.Tech ECE - B", Code: "ECE-B"},
	{ID: 11, Name: "B.Tech IT - A", Code: "IT-A"},
	{ID: 12, Name: "B.Tech IT - B", Code: "IT-B"},
	{ID: 13, Name: "B.Tech MECH", Code: "MECH"},
	{ID: 14, Name: "B.Tech RA", Code: "RA"},
}

// Faculty lists the course instructors. DepartmentCode is the home section;
// the sections a faculty member actually teaches come from TimetableEntries.
var Faculty = []storage.Faculty{
	{
		ID:             1,
		Name:           "Sathish R",
		Email:          "r.sathish@kgkite.ac.in",
		Phone:          "9791406167",
		DepartmentCode: "AIDS-A",
		Experience:     "13",
		ResearchArea:   "Machine Learning",
		IsActive:       true,
	},
	{
		ID:             2,
		Name:           "Sikkandhar Batcha J",
		Email:          "sikkandharbatcha.j@kgkite.ac.in",
		Phone:          "9486429598",
		DepartmentCode: "AIDS-B",
		Experience:     "9",
		ResearchArea:   "Deep Learning",
		IsActive:       true,
	},
	{
		ID:             3,
		Name:           "Anitha M",
		Email:          "anitha.m@kgkite.ac.in",
		Phone:          "9597942750",
		DepartmentCode: "AIML-A",
		Experience:     "12",
		ResearchArea:   "Big Data Analytics with Deep Learning",
		IsActive:       true,
	},
	{
		ID:             4,
		Name:           "Aruna R",
		Email:          "aruna.r@kgkite.ac.in",
		Phone:          "9585458088",
		DepartmentCode: "AIML-B",
		Experience:     "11.5",
		ResearchArea:   "Data Science",
		IsActive:       true,
	},
	{
		ID:             5,
		Name:           "Janani S",
		Email:          "janani.s@kgkite.ac.in",
		Phone:          "9786282598",
		DepartmentCode: "CSE-A",
		Experience:     "9.5",
		ResearchArea:   "Deep Learning & Neural Networks",
		IsActive:       true,
	},
	{
		ID:             6,
		Name:           "Indhumathi S",
		Email:          "indhumathi.s@kgkite.ac.in",
		Phone:          "7708146489",
		DepartmentCode: "CSE-B",
		Experience:     "8",
		ResearchArea:   "Machine Learning & Deep Learning",
		IsActive:       true,
	},
	{
		ID:             7,
		Name:           "Saranya S",
		Email:          "saranya.sh@kgkite.ac.in",
		Phone:          "7339511127",
		DepartmentCode: "CSBS",
		Experience:     "0.4",
		ResearchArea:   "AI",
		IsActive:       true,
	},
	{
		ID:             8,
		Name:           "Anusha S",
		Email:          "anusha.s@kgkite.ac.in",
		Phone:          "8056008866",
		DepartmentCode: "CYS",
		Experience:     "12.5",
		ResearchArea:   "Data Science",
		IsActive:       true,
	},
	{
		ID:             9,
		Name:           "Kiruthikaa R",
		Email:          "kiruthikaa.r@kgkite.ac.in",
		Phone:          "6382754523",
		DepartmentCode: "ECE-A",
		Experience:     "8.5",
		ResearchArea:   "IoT & Embedded Systems",
		IsActive:       true,
	},
	{
		ID:             10,
		Name:           "Janani R",
		Email:          "janani.r@kgkite.ac.in",
		Phone:          "9488762688",
		DepartmentCode: "ECE-B",
		Experience:     "2.5",
		ResearchArea:   "Machine Learning",
		IsActive:       true,
	},
	{
		ID:             11,
		Name:           "Venkatesh Babu S",
		Email:          "Venkateshbabu.s@kgkite.ac.in",
		Phone:          "9790197267",
		DepartmentCode: "IT-A",
		Experience:     "20",
		IsActive:       true,
	},
	{
		ID:             12,
		Name:           "Dhamayanthi P",
		Email:          "dhamayanthi.p@kgkite.ac.in",
		Phone:          "8220279253",
		DepartmentCode: "IT-B",
		Experience:     "5.1",
		ResearchArea:   "Machine Learning",
		IsActive:       true,
	},
	{
		ID:             13,
		Name:           "Pradeep G",
		Email:          "pradeep.g@kgkite.ac.in",
		Phone:          "9600018957",
		DepartmentCode: "MECH",
		Experience:     "9",
		ResearchArea:   "Deep Learning",
		IsActive:       true,
	},
	{
		ID:             14,
		Name:           "Madhan S",
		Email:          "madhan.m@kgkite.ac.in",
		Phone:          "8344108003",
		DepartmentCode: "RA",
		Experience:     "0.4",
		ResearchArea:   "Deep Learning",
		IsActive:       true,
	},
}
