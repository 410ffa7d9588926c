package models

import "encoding/json"

// Customer is an account record from the Customer 360 project.
type Customer struct {
	Name                 string            `json:"name"`
	Industry             string            `json:"industry,omitempty"`
	Logo                 string            `json:"logo,omitempty"`
	Plan                 string            `json:"plan,omitempty"`
	ARR                  string            `json:"arr,omitempty"`
	NameUse              string            `json:"nameUse,omitempty"`
	Region               string            `json:"region,omitempty"`
	CreatedAt            string            `json:"_createdAt,omitempty"`
	CompanyOverview      json.RawMessage   `json:"companyOverview,omitempty"`
	UseCases             []CustomerUseCase `json:"useCases,omitempty"`
	InitialLaunch        *InitialLaunch    `json:"initialLaunch,omitempty"`
	AllUseCaseCategories []string          `json:"allUsecaseCategories,omitempty"`
}

type CustomerUseCase struct {
	Title          string          `json:"title,omitempty"`
	Description    json.RawMessage `json:"description,omitempty"`
	Categories     []string        `json:"categories,omitempty"`
	GreatExampleOf []string        `json:"greatExampleOf,omitempty"`
	ValueDelivered []string        `json:"valueDelivered,omitempty"`
	WhySanity      []string        `json:"whySanity,omitempty"`
}

type InitialLaunch struct {
	ContractStartDate                  string `json:"contractStartDate,omitempty"`
	FirstLaunchDate                    string `json:"firstLaunchDate,omitempty"`
	ImplementationStateAtContractStart string `json:"implementationStateAtContractStart,omitempty"`
}

// Technology is a product a customer runs alongside, or instead of, the platform.
type Technology struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
	Logo string `json:"logo,omitempty"`
	Type string `json:"type,omitempty"`
}

// Account bundles everything shown on a customer page.
type Account struct {
	Customer     Customer     `json:"customer"`
	Technologies []Technology `json:"technologies"`
	PreviousCMS  []Technology `json:"previousCms"`
}
