package content

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// catalogFile is the on-disk shape of one lesson file.
type catalogFile struct {
	Lesson    Lesson     `yaml:"lesson"`
	Exercises []Exercise `yaml:"exercises"`
}

// Catalog is a Resolver backed by the YAML files compiled into the binary.
type Catalog struct {
	exercises map[string]Exercise
	lessons   []Lesson
	byLesson  map[string][]string
}

// NewCatalog parses the embedded catalog. It fails only on malformed YAML or
// internally inconsistent lesson files; an empty catalog is valid.
func NewCatalog() (*Catalog, error) {
	return loadCatalog(catalogFS, "catalog")
}

func loadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	c := &Catalog{
		exercises: make(map[string]Exercise),
		byLesson:  make(map[string][]string),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		if file.Lesson.ID == "" {
			return nil, fmt.Errorf("%s: lesson id is required", entry.Name())
		}

		for _, ex := range file.Exercises {
			if ex.ID == "" {
				return nil, fmt.Errorf("%s: exercise without id", entry.Name())
			}
			if _, dup := c.exercises[ex.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate exercise id %q", entry.Name(), ex.ID)
			}
			c.exercises[ex.ID] = ex
			c.byLesson[file.Lesson.ID] = append(c.byLesson[file.Lesson.ID], ex.ID)
		}

		lesson := file.Lesson
		if len(lesson.ExerciseIDs) == 0 {
			lesson.ExerciseIDs = c.byLesson[lesson.ID]
		}
		c.lessons = append(c.lessons, lesson)
	}

	sort.Slice(c.lessons, func(i, j int) bool {
		if c.lessons[i].Tier != c.lessons[j].Tier {
			return c.lessons[i].Tier < c.lessons[j].Tier
		}
		return c.lessons[i].ID < c.lessons[j].ID
	})

	return c, nil
}

// GetExercise returns the authored exercise with the given ID, or nil.
func (c *Catalog) GetExercise(id string) (*Exercise, error) {
	ex, ok := c.exercises[id]
	if !ok {
		return nil, nil
	}
	return &ex, nil
}

// Lessons returns all authored lessons in tier order.
func (c *Catalog) Lessons() ([]Lesson, error) {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out, nil
}

// LessonExercises returns the exercises belonging to one lesson.
func (c *Catalog) LessonExercises(lessonID string) ([]Exercise, error) {
	ids := c.byLesson[lessonID]
	out := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		if ex, ok := c.exercises[id]; ok {
			out = append(out, ex)
		}
	}
	return out, nil
}

// ExerciseCount returns the number of authored exercises.
func (c *Catalog) ExerciseCount() int {
	return len(c.exercises)
}
