package entities

import (
	"github.com/KirkDiggler/battle-arena/internal/errors"
)

// JobName is the class label chosen at character selection and written to
// the save record.
type JobName string

// Jobs
const (
	JobWizard JobName = "Wizard"
	JobKnight JobName = "Knight"
)

// Job describes a playable class: base stats and its fixed item set.
type Job struct {
	Name         JobName
	Health       float64
	AttackPower  float64
	DefensePower float64
	Items        []Item
}

// Jobs returns the playable classes in menu order.
func Jobs() []Job {
	return []Job{
		{
			Name:         JobWizard,
			Health:       50,
			AttackPower:  25,
			DefensePower: 5,
			Items: []Item{
				{Name: "Wand", StatBoost: 10, Type: ItemTypeAttack},
				{Name: "Shoes", StatBoost: 10, Type: ItemTypeDefense},
			},
		},
		{
			Name:         JobKnight,
			Health:       75,
			AttackPower:  15,
			DefensePower: 10,
			Items: []Item{
				{Name: "Sword", StatBoost: 15, Type: ItemTypeAttack},
				{Name: "Shield", StatBoost: 10, Type: ItemTypeDefense},
			},
		},
	}
}

// LookupJob finds a job by its label.
// Returns errors.InvalidArgument if no job has that label.
func LookupJob(name string) (*Job, error) {
	for _, job := range Jobs() {
		if string(job.Name) == name {
			return &job, nil
		}
	}
	return nil, errors.InvalidArgumentf("unknown job %q", name).WithMeta("job", name)
}
