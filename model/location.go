package model

import "time"

// The 8 colors the task-list UI offers. Anything else is rejected at the boundary.
var TaskListColors = []string{
	"red", "orange", "yellow", "green", "blue", "purple", "pink", "gray",
}

type Product struct {
	ProductID string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  float64 `bson:"quantity" json:"quantity"`
	Unit      string  `bson:"unit" json:"unit"`
}

type Category struct {
	CategoryID string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Products   []Product `bson:"products" json:"products"`
}

type Task struct {
	TaskID string `bson:"id" json:"id"`
	Text   string `bson:"text" json:"text"`
	Note   string `bson:"note,omitempty" json:"note,omitempty"`
	Done   bool   `bson:"done" json:"done"`
}

type TaskList struct {
	ListID string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Color  string `bson:"color" json:"color"`
	Tasks  []Task `bson:"tasks" json:"tasks"`
}

// LocationState is the whole-document state of one location: every save
// replaces categories and task lists wholesale. Version is bumped by the
// store on each accepted save and is what pollers diff against.
type LocationState struct {
	LocationID string     `bson:"_id" json:"id"`
	Categories []Category `bson:"categories" json:"categories"`
	TaskLists  []TaskList `bson:"task_lists" json:"taskLists"`
	Version    int64      `bson:"version" json:"version"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}

// EmptyLocationState is what a GET returns before the first save.
func EmptyLocationState(locationID string) *LocationState {
	return &LocationState{
		LocationID: locationID,
		Categories: []Category{},
		TaskLists:  []TaskList{},
		Version:    0,
	}
}

// ProductCount sums products across all categories.
func (s *LocationState) ProductCount() int {
	count := 0
	for _, category := range s.Categories {
		count += len(category.Products)
	}
	return count
}

// TaskCount sums tasks across all task lists.
func (s *LocationState) TaskCount() int {
	count := 0
	for _, list := range s.TaskLists {
		count += len(list.Tasks)
	}
	return count
}

func ValidTaskListColor(color string) bool {
	for _, c := range TaskListColors {
		if c == color {
			return true
		}
	}
	return false
}
