package model

import (
	"net/http"

	U "bizdesk/util"
)

// TaxRate is a fixed policy constant applied on all plan amounts.
// Tax-rule computation per jurisdiction is out of scope.
const TaxRate = 0.20

type Plan struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`

	// MonthlyPrice wins when non zero. Otherwise AnnualPrice / 12.
	MonthlyPrice float64 `json:"monthly_price"`
	AnnualPrice  float64 `json:"annual_price"`

	MaxMembers int  `json:"max_members"`
	IsActive   bool `json:"-"`
}

type AddOn struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
}

const (
	StarterPlanCode  = "starter"
	BusinessPlanCode = "business"
	PremiumPlanCode  = "premium"
	LegacyPlanCode   = "legacy"
)

const (
	StarterPlanID  = uint64(1)
	BusinessPlanID = uint64(2)
	PremiumPlanID  = uint64(3)
	LegacyPlanID   = uint64(4)
)

var StarterPlan = Plan{
	ID:           StarterPlanID,
	Name:         "Starter",
	Code:         StarterPlanCode,
	MonthlyPrice: 50,
	AnnualPrice:  540,
	MaxMembers:   5,
	IsActive:     true,
}

var BusinessPlan = Plan{
	ID:           BusinessPlanID,
	Name:         "Business",
	Code:         BusinessPlanCode,
	MonthlyPrice: 100,
	AnnualPrice:  1080,
	MaxMembers:   25,
	IsActive:     true,
}

// PremiumPlan is sold on annual terms only. Monthly amount derives
// from the annual price.
var PremiumPlan = Plan{
	ID:          PremiumPlanID,
	Name:        "Premium",
	Code:        PremiumPlanCode,
	AnnualPrice: 2400,
	MaxMembers:  100,
	IsActive:    true,
}

var LegacyPlan = Plan{
	ID:           LegacyPlanID,
	Name:         "Legacy",
	Code:         LegacyPlanCode,
	MonthlyPrice: 30,
	IsActive:     false,
}

var plans = []Plan{StarterPlan, BusinessPlan, PremiumPlan, LegacyPlan}

var addOns = []AddOn{
	{ID: "extra-storage-monthly", Name: "Extra document storage", MonthlyPrice: 10},
	{ID: "extra-seats-5-monthly", Name: "5 additional member seats", MonthlyPrice: 15},
}

func GetPlanByID(planID uint64) (*Plan, int) {
	for _, plan := range plans {
		if plan.ID == planID {
			return &plan, http.StatusFound
		}
	}
	return nil, http.StatusNotFound
}

func GetPlanByCode(code string) (*Plan, int) {
	for _, plan := range plans {
		if plan.Code == code {
			return &plan, http.StatusFound
		}
	}
	return nil, http.StatusNotFound
}

func GetActivePlans() []Plan {
	activePlans := make([]Plan, 0, len(plans))
	for _, plan := range plans {
		if plan.IsActive {
			activePlans = append(activePlans, plan)
		}
	}
	return activePlans
}

func GetAddOnByID(addOnID string) (*AddOn, int) {
	for _, addOn := range addOns {
		if addOn.ID == addOnID {
			return &addOn, http.StatusFound
		}
	}
	return nil, http.StatusNotFound
}

// MonthlyAmount - Monthly net price of a plan. Falls back to the
// annual price divided by 12 when no monthly price is set.
func (plan *Plan) MonthlyAmount() float64 {
	if plan.MonthlyPrice > 0 {
		return plan.MonthlyPrice
	}
	return U.RoundToTwoDecimals(plan.AnnualPrice / 12)
}

// ComputePaymentAmounts derives net, tax and gross for a plan with
// optional add-ons. Unknown add-on ids are ignored here; callers
// validate them upfront.
func ComputePaymentAmounts(plan *Plan, addOnIDs []string) (net, tax, gross float64) {
	net = plan.MonthlyAmount()
	for _, addOnID := range addOnIDs {
		if addOn, errCode := GetAddOnByID(addOnID); errCode == http.StatusFound {
			net += addOn.MonthlyPrice
		}
	}

	net = U.RoundToTwoDecimals(net)
	tax = U.RoundToTwoDecimals(net * TaxRate)
	gross = U.RoundToTwoDecimals(net + tax)
	return net, tax, gross
}
