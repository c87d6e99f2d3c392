// Package fixtures holds the seed set the directory is built from on
// every process start.
package fixtures

import (
	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
	"github.com/gestaorh/portal-backend-go/internal/domain/company"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
)

func Companies() []company.Company {
	return []company.Company{
		{ID: "c1", Name: "Empresa 1 Ltda", CNPJ: "12.345.678/0001-90"},
		{ID: "c2", Name: "Empresa para teste S.A.", CNPJ: "98.765.432/0001-10"},
	}
}

func Admins() []admin.Admin {
	return []admin.Admin{
		{
			ID:               "a1",
			Username:         "admin",
			Password:         "123",
			ManagedCompanies: []string{"c1", "c2"},
		},
	}
}

func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID:                   "e1",
			CompanyID:            "c1",
			Code:                 "1001",
			Password:             "123",
			FullName:             "Carlos Eduardo Silva",
			SocialName:           "Cadu Silva",
			Nickname:             "Cadu",
			Gender:               "Male",
			IsSmoker:             false,
			Race:                 "White",
			BloodType:            "O+",
			Email:                "carlos.silva@techsolutions.com",
			BirthDate:            "1990-05-15",
			BirthState:           "SP",
			BirthCity:            "São Paulo",
			Nationality:          "Brazilian",
			CivilStatus:          employee.CivilStatusMarried,
			QualificationSummary: "Software engineer with over 10 years of full-stack experience, specialized in React and Node.js.",
			MainEducation: []employee.MainEducation{
				{
					ID:          "edu1",
					Degree:      employee.EducationLevelBachelor,
					CourseName:  "Computer Science",
					Institution: "USP - Universidade de São Paulo",
					Status:      employee.CourseStatusCompleted,
					CBO:         "2124-05",
					StartDate:   "2008-02-01",
					EndDate:     "2012-12-15",
				},
			},
			Courses: []employee.Course{
				{
					ID:          "course1",
					Name:        "Software Architecture",
					Institution: "Alura",
					Status:      employee.CourseStatusCompleted,
					StartDate:   "2023-01-10",
					EndDate:     "2023-03-20",
					Notes:       "Focused on microservices.",
				},
			},
			Experiences: []employee.Experience{
				{
					ID:          "exp1",
					Company:     "WebDev Studio",
					Role:        "Junior Developer",
					Field:       "Technology",
					StartDate:   "2013-02-01",
					EndDate:     "2015-05-30",
					Description: "Built institutional websites with WordPress and PHP.",
				},
				{
					ID:          "exp2",
					Company:     "SoftHouse Sistemas",
					Role:        "Mid-level Developer",
					Field:       "Technology",
					StartDate:   "2015-06-15",
					EndDate:     "2020-01-10",
					Description: "Maintained legacy Java systems and migrated them to a microservice architecture.",
				},
			},
		},
		{
			ID:                   "e2",
			CompanyID:            "c1",
			Code:                 "1002",
			Password:             "123",
			FullName:             "Ana Maria Oliveira",
			SocialName:           "",
			Nickname:             "Aninha",
			Gender:               "Female",
			IsSmoker:             false,
			Race:                 "Mixed",
			BloodType:            "A-",
			Email:                "ana.oliveira@techsolutions.com",
			BirthDate:            "1995-10-20",
			BirthState:           "RJ",
			BirthCity:            "Rio de Janeiro",
			Nationality:          "Brazilian",
			CivilStatus:          employee.CivilStatusSingle,
			QualificationSummary: "Data specialist focused on big data and machine learning.",
			MainEducation: []employee.MainEducation{
				{
					ID:          "edu2",
					Degree:      employee.EducationLevelMaster,
					CourseName:  "Data Science",
					Institution: "UFRJ",
					Status:      employee.CourseStatusCompleted,
					CBO:         "2124-20",
					StartDate:   "2018-03-01",
					EndDate:     "2020-02-28",
				},
			},
			Courses:     []employee.Course{},
			Experiences: []employee.Experience{},
		},
		{
			ID:                   "e3",
			CompanyID:            "c2",
			Code:                 "2001",
			Password:             "123",
			FullName:             "Roberto Santos",
			SocialName:           "Beto",
			Nickname:             "Beto",
			Gender:               "Male",
			IsSmoker:             true,
			Race:                 "Black",
			BloodType:            "B+",
			Email:                "roberto.santos@global.com",
			BirthDate:            "1985-02-10",
			BirthState:           "MG",
			BirthCity:            "Belo Horizonte",
			Nationality:          "Brazilian",
			CivilStatus:          employee.CivilStatusDivorced,
			QualificationSummary: "Logistics professional with fleet management experience.",
			MainEducation: []employee.MainEducation{
				{
					ID:          "edu3",
					Degree:      employee.EducationLevelSecondary,
					CourseName:  "High School",
					Institution: "Escola Estadual Central",
					Status:      employee.CourseStatusCompleted,
					CBO:         "",
					StartDate:   "2000-02-01",
					EndDate:     "2002-12-10",
				},
			},
			Courses: []employee.Course{
				{
					ID:          "course3",
					Name:        "Logistics Technician",
					Institution: "SENAI",
					Status:      employee.CourseStatusCompleted,
					StartDate:   "2004-02-01",
					EndDate:     "2005-11-30",
					Notes:       "Vocational technical course.",
				},
			},
			Experiences: []employee.Experience{
				{
					ID:          "exp3",
					Company:     "Transportadora Rápida",
					Role:        "Driver",
					Field:       "Logistics",
					StartDate:   "2006-01-10",
					EndDate:     "2015-12-20",
					Description: "Interstate cargo transport and invoice control.",
				},
			},
		},
	}
}
