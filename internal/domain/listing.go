package domain

import (
	"fmt"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		return jt, nil
	}
	return "", fmt.Errorf("未知的工作类型 %q", s)
}

type WorkLocation string

const (
	WorkLocationRemote   WorkLocation = "remote"
	WorkLocationInOffice WorkLocation = "in-office"
	WorkLocationHybrid   WorkLocation = "hybrid"
)

func ParseWorkLocation(s string) (WorkLocation, error) {
	wl := WorkLocation(s)
	switch wl {
	case WorkLocationRemote, WorkLocationInOffice, WorkLocationHybrid:
		return wl, nil
	}
	return "", fmt.Errorf("未知的办公方式 %q", s)
}

type JobListing struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	CompanyName    string       `json:"companyName"`
	CompanyLogoURL string       `json:"companyLogoUrl"`
	Position       string       `json:"position"`
	MonthlySalary  int64        `json:"monthlySalary"`
	JobType        JobType      `json:"jobType"`
	WorkLocation   WorkLocation `json:"workLocation"`
	Location       string       `json:"location"`
	Description    string       `json:"description"`
	AboutCompany   string       `json:"aboutCompany"`
	Skills         []string     `json:"skills"`
	AdditionalInfo string       `json:"additionalInfo,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// ListingPatch 为每个可修改的字段提供一个可空的槽位，
// 只有非 nil 的槽位会被应用到职位上
type ListingPatch struct {
	CompanyName    *string
	CompanyLogoURL *string
	Position       *string
	MonthlySalary  *int64
	JobType        *JobType
	WorkLocation   *WorkLocation
	Location       *string
	Description    *string
	AboutCompany   *string
	Skills         *[]string
	AdditionalInfo *string
}
