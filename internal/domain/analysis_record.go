package domain

import "time"

// AnalysisRecord is one saved dilemma analysis. Rows live in the hosted
// store's dilemmas_history table; the store assigns id and created_at.
// Records are immutable once created, deletion aside.
type AnalysisRecord struct {
	ID                 string    `json:"id"`
	UserID             *string   `json:"user_id"`
	DilemmaKey         *string   `json:"dilemma_key"`
	CustomText         *string   `json:"custom_text"`
	UtilitarianHTML    *string   `json:"utilitarian_html"`
	DeontologistHTML   *string   `json:"deontologist_html"`
	VirtueEthicistHTML *string   `json:"virtue_ethicist_html"`
	CreatedAt          time.Time `json:"created_at"`
}

// AnalysisInput carries the caller-supplied fields of a new record. Every
// field is optional; absent fields persist as SQL null, never empty string,
// which is why these stay pointers with no omitempty.
type AnalysisInput struct {
	UserID             *string `json:"user_id"`
	DilemmaKey         *string `json:"dilemma_key"`
	CustomText         *string `json:"custom_text"`
	UtilitarianHTML    *string `json:"utilitarian_html"`
	DeontologistHTML   *string `json:"deontologist_html"`
	VirtueEthicistHTML *string `json:"virtue_ethicist_html"`
}
