// Package seed populates a fresh store with demo data so the dashboard
// has something to show before the user logs anything.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// data mirrors the structure of demo.yaml. Dates are expressed as
// day offsets from "today" so the seeded dashboard always looks alive.
type data struct {
	Profile struct {
		DisplayName string `yaml:"display_name"`
		Email       string `yaml:"email"`
	} `yaml:"profile"`
	Projects []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"projects"`
	Tasks []struct {
		Title      string   `yaml:"title"`
		Category   string   `yaml:"category"`
		Priority   string   `yaml:"priority"`
		Quadrant   string   `yaml:"quadrant"`
		Repeat     string   `yaml:"repeat"`
		DueTime    string   `yaml:"due_time"`
		Tags       []string `yaml:"tags"`
		DateOffset int      `yaml:"date_offset"`
	} `yaml:"tasks"`
	Meals []struct {
		Name     string `yaml:"name"`
		Type     string `yaml:"type"`
		Time     string `yaml:"time"`
		Calories int    `yaml:"calories"`
		Protein  int    `yaml:"protein"`
		Carbs    int    `yaml:"carbs"`
		Fats     int    `yaml:"fats"`
	} `yaml:"meals"`
	Workouts []struct {
		Name           string `yaml:"name"`
		Type           string `yaml:"type"`
		Intensity      string `yaml:"intensity"`
		Time           string `yaml:"time"`
		Duration       int    `yaml:"duration"`
		CaloriesBurned int    `yaml:"calories_burned"`
		Exercises      []struct {
			Name   string `yaml:"name"`
			Sets   int    `yaml:"sets"`
			Reps   int    `yaml:"reps"`
			Weight int    `yaml:"weight"`
		} `yaml:"exercises"`
	} `yaml:"workouts"`
}

// Seeder writes the embedded demo data through the repositories.
type Seeder struct {
	tasks    domain.TaskRepository
	meals    domain.MealRepository
	workouts domain.WorkoutRepository
	projects domain.ProjectRepository
	profile  domain.ProfileRepository
	clock    domain.Clock
}

// New creates a new Seeder.
func New(tasks domain.TaskRepository, meals domain.MealRepository, workouts domain.WorkoutRepository, projects domain.ProjectRepository, profile domain.ProfileRepository, clock domain.Clock) *Seeder {
	return &Seeder{
		tasks:    tasks,
		meals:    meals,
		workouts: workouts,
		projects: projects,
		profile:  profile,
		clock:    clock,
	}
}

// Seed populates the store with the embedded demo data. Existing
// records are left alone; seeding only appends.
func (s *Seeder) Seed() error {
	var d data
	if err := yaml.Unmarshal(demoYAML, &d); err != nil {
		return fmt.Errorf("parse demo data: %w", err)
	}

	now := s.clock.Now()
	today := domain.NewDateKey(now)

	if d.Profile.DisplayName != "" {
		existing, err := s.profile.GetProfile()
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		if existing == nil {
			p := &domain.Profile{
				DisplayName: d.Profile.DisplayName,
				Email:       d.Profile.Email,
				Created:     now,
				Updated:     now,
			}
			if err := s.profile.SaveProfile(p); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
		}
	}

	for _, p := range d.Projects {
		id, err := s.projects.NextProjectID()
		if err != nil {
			return fmt.Errorf("generate project ID: %w", err)
		}
		project := &domain.Project{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Created:     now,
			Updated:     now,
		}
		if err := s.projects.SaveProject(project); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
	}

	for _, t := range d.Tasks {
		id, err := s.tasks.NextTaskID()
		if err != nil {
			return fmt.Errorf("generate task ID: %w", err)
		}
		date := today.AddDays(t.DateOffset)
		task := &domain.Task{
			ID:       id,
			Title:    t.Title,
			Category: t.Category,
			Date:     date,
			Priority: domain.Priority(t.Priority),
			Quadrant: domain.Quadrant(t.Quadrant),
			Tags:     domain.NormalizeTags(t.Tags),
			Created:  now,
			Updated:  now,
		}
		if task.Priority == "" {
			task.Priority = domain.PriorityMedium
		}
		if t.DueTime != "" {
			if due, err := time.ParseInLocation("2006-01-02 15:04", string(date)+" "+t.DueTime, time.Local); err == nil {
				task.DueAt = &due
			}
		}
		if err := s.tasks.SaveTask(task); err != nil {
			return fmt.Errorf("save task: %w", err)
		}
		if t.Repeat != "" {
			enh, err := s.tasks.GetEnhancement(id)
			if err != nil {
				return fmt.Errorf("get enhancement: %w", err)
			}
			enh.Repeat = domain.ParseRepeat(t.Repeat).String()
			if err := s.tasks.SaveEnhancement(id, enh); err != nil {
				return fmt.Errorf("save enhancement: %w", err)
			}
		}
	}

	for _, m := range d.Meals {
		id, err := s.meals.NextMealID()
		if err != nil {
			return fmt.Errorf("generate meal ID: %w", err)
		}
		meal := &domain.Meal{
			ID:       id,
			Name:     m.Name,
			Type:     domain.MealType(m.Type),
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fats:     m.Fats,
			Date:     today,
			Time:     m.Time,
			Created:  now,
		}
		if err := s.meals.SaveMeal(meal); err != nil {
			return fmt.Errorf("save meal: %w", err)
		}
	}

	for _, w := range d.Workouts {
		id, err := s.workouts.NextWorkoutID()
		if err != nil {
			return fmt.Errorf("generate workout ID: %w", err)
		}
		workout := &domain.Workout{
			ID:             id,
			Name:           w.Name,
			Type:           w.Type,
			Intensity:      domain.Intensity(w.Intensity),
			Duration:       w.Duration,
			CaloriesBurned: w.CaloriesBurned,
			Date:           today,
			Time:           w.Time,
			Created:        now,
		}
		for _, e := range w.Exercises {
			workout.Exercises = append(workout.Exercises, domain.Exercise{
				Name:   e.Name,
				Sets:   e.Sets,
				Reps:   e.Reps,
				Weight: e.Weight,
			})
		}
		if err := s.workouts.SaveWorkout(workout); err != nil {
			return fmt.Errorf("save workout: %w", err)
		}
	}

	return nil
}
