package export

import (
	"strconv"

	"github.com/noah-isme/sigue-client/internal/models"
)

func id(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

// Careers tabulates a career list.
func Careers(rows []models.Career) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Semesters"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Name": r.Name, "Semesters": strconv.Itoa(r.Semesters),
		})
	}
	return data
}

// Classrooms tabulates a classroom list.
func Classrooms(rows []models.Classroom) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Building"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Name": r.Name, "Building": r.Building,
		})
	}
	return data
}

// Schedules tabulates a schedule list.
func Schedules(rows []models.Schedule) Dataset {
	data := Dataset{Headers: []string{"ID", "Time", "Shift"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Time": r.Time, "Shift": string(r.Shift),
		})
	}
	return data
}

// Subjects tabulates a subject list.
func Subjects(rows []models.Subject) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Credits", "Semester", "Career"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Name": r.Name, "Credits": strconv.Itoa(r.Credits),
			"Semester": strconv.Itoa(r.Semester), "Career": id(r.CareerID),
		})
	}
	return data
}

// Teachers tabulates a teacher list.
func Teachers(rows []models.Teacher) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Email", "Degree"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Name": r.Name, "Email": r.Email, "Degree": string(r.Degree),
		})
	}
	return data
}

// Students tabulates a student list.
func Students(rows []models.Student) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Email", "Status", "Date of birth", "Career"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Name": r.Name, "Email": r.Email, "Status": string(r.Status),
			"Date of birth": r.DateOfBirth, "Career": id(r.CareerID),
		})
	}
	return data
}

// Users tabulates an account list.
func Users(rows []models.User) Dataset {
	data := Dataset{Headers: []string{"ID", "Email", "Username", "Role"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Email": r.Email, "Username": r.Username, "Role": string(r.Role),
		})
	}
	return data
}

// Groups tabulates a group list.
func Groups(rows []models.Group) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Career", "Subject", "Teacher", "Schedule"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.ID), "Name": r.Name, "Career": r.CareerName, "Subject": r.SubjectName,
			"Teacher": r.TeacherName, "Schedule": r.ScheduleTime,
		})
	}
	return data
}

// GroupStudents tabulates the enrolment of one group.
func GroupStudents(rows []models.GroupStudent) Dataset {
	data := Dataset{Headers: []string{"ID", "Name", "Email", "Status"}}
	for _, r := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"ID": id(r.StudentID), "Name": r.Name, "Email": r.Email, "Status": string(r.Status),
		})
	}
	return data
}
