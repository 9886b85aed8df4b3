package faq

import (
	"fmt"
	"time"
)

type FAQ struct {
	id        uint
	question  string
	answer    string
	category  string
	isActive  bool
	createdAt time.Time
}

func NewFAQ(question, answer, category string) (*FAQ, error) {
	if len(question) == 0 {
		return nil, fmt.Errorf("question is required")
	}
	if len(answer) == 0 {
		return nil, fmt.Errorf("answer is required")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}

	return &FAQ{
		question:  question,
		answer:    answer,
		category:  category,
		isActive:  true,
		createdAt: time.Now(),
	}, nil
}

func ReconstructFAQ(
	id uint,
	question string,
	answer string,
	category string,
	isActive bool,
	createdAt time.Time,
) (*FAQ, error) {
	if id == 0 {
		return nil, fmt.Errorf("FAQ ID cannot be zero")
	}

	return &FAQ{
		id:        id,
		question:  question,
		answer:    answer,
		category:  category,
		isActive:  isActive,
		createdAt: createdAt,
	}, nil
}

func (f *FAQ) ID() uint {
	return f.id
}

func (f *FAQ) Question() string {
	return f.question
}

func (f *FAQ) Answer() string {
	return f.answer
}

func (f *FAQ) Category() string {
	return f.category
}

func (f *FAQ) IsActive() bool {
	return f.isActive
}

func (f *FAQ) CreatedAt() time.Time {
	return f.createdAt
}

func (f *FAQ) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("FAQ ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("FAQ ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *FAQ) Deactivate() {
	f.isActive = false
}

func (f *FAQ) Activate() {
	f.isActive = true
}
