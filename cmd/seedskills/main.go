// Command seedskills populates the skill catalogue with the predefined
// entries. Safe to run repeatedly: existing names are left untouched.
package main

import (
	"context"
	"log/slog"

	"jobsearch/config"
	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	logs "jobsearch/internal/infra/log"
	"jobsearch/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

var skillCatalogue = map[string][]string{
	"Programming Languages": {
		"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Go", "Rust", "Swift",
		"TypeScript", "Kotlin", "Scala", "R", "MATLAB", "SQL", "HTML/CSS",
	},
	"Frameworks & Libraries": {
		"React", "Angular", "Vue.js", "Django", "Flask", "Spring Boot", "Node.js",
		"Express.js", "Laravel", "Rails", "ASP.NET", "jQuery", "Bootstrap",
	},
	"Databases": {
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "MS SQL Server",
		"Firebase", "DynamoDB", "Elasticsearch",
	},
	"Cloud & DevOps": {
		"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git",
		"Linux", "CI/CD", "Terraform", "Ansible",
	},
	"Data Science & Analytics": {
		"Machine Learning", "Data Analysis", "Pandas", "NumPy", "TensorFlow", "PyTorch",
		"Scikit-learn", "Tableau", "Power BI", "Excel", "Statistics",
	},
	"Design & Marketing": {
		"UI/UX Design", "Figma", "Adobe Creative Suite", "Photoshop", "Illustrator",
		"Digital Marketing", "SEO", "Content Marketing", "Social Media Marketing",
	},
	"Business & Soft Skills": {
		"Project Management", "Agile/Scrum", "Leadership", "Communication",
		"Problem Solving", "Team Collaboration", "Customer Service", "Sales",
		"Public Speaking", "Time Management",
	},
	"Other Technical": {
		"REST APIs", "GraphQL", "Microservices", "Mobile Development", "iOS Development",
		"Android Development", "Game Development", "Blockchain", "Cybersecurity",
		"Network Administration", "Quality Assurance", "Testing",
	},
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewSkillRepository,
		),
		fx.Invoke(seed),
	).Run()
}

type seedParams struct {
	fx.In

	Logger     *slog.Logger
	SkillRepo  repository.SkillRepository
	Shutdowner fx.Shutdowner
}

func seed(params seedParams) {
	skills := make([]*entity.Skill, 0, 128)
	for category, names := range skillCatalogue {
		for _, name := range names {
			skills = append(skills, &entity.Skill{Name: name, Category: category})
		}
	}

	if err := params.SkillRepo.UpsertSkills(context.Background(), skills); err != nil {
		params.Logger.Error("skill catalogue seed failed", slog.Any("error", err))
		_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

		return
	}

	params.Logger.Info("skill catalogue seeded", slog.Int("skills", len(skills)))
	_ = params.Shutdowner.Shutdown()
}
