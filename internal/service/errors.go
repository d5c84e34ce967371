package service

import "errors"

var (
	ErrValidationNoBenefitID       = errors.New("no benefit id provided")
	ErrValidationNoApplicationData = errors.New("no application data provided")
	ErrValidationNoApplicationID   = errors.New("no application id provided")
	ErrValidationInvalidFileID     = errors.New("invalid application file id")
	ErrValidationInvalidDocument   = errors.New("document content is not valid base64")

	ErrApplicationNotFound = errors.New("application was not found")
	ErrNoFilesToVerify     = errors.New("no files to verify")

	ErrNotEligible = errors.New("application is not eligible for benefit")
)
