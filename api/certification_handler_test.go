package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type certificationResponse struct {
	Success       bool                 `json:"success"`
	Certification models.Certification `json:"certification"`
}

func newTestCertificationHandler(t *testing.T) certificationHandler {
	t.Helper()
	return newCertificationHandler(newTestDatabase(t).CertificationRepo())
}

func TestCreateCertificationSplitsCommaSeparatedSkills(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.createCertification(), http.MethodPost, "/certifications", map[string]any{
		"title":          "AWS Certified Data Engineer",
		"issuer":         "Amazon Web Services",
		"date":           "2024-03",
		"credential_url": "https://aws.amazon.com/verification",
		"skills":         "Glue, Redshift, Kinesis",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp certificationResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, models.StringList{"Glue", "Redshift", "Kinesis"}, resp.Certification.Skills)
}

func TestCreateCertificationDefaultsSkillsToEmptyList(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.createCertification(), http.MethodPost, "/certifications", map[string]any{
		"title": "Databricks Certified",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp certificationResponse
	decodeResponse(t, rec, &resp)
	assert.NotNil(t, resp.Certification.Skills)
	assert.Empty(t, resp.Certification.Skills)
}

func TestCreateCertificationRequiresTitle(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.createCertification(), http.MethodPost, "/certifications", map[string]any{
		"issuer": "nobody",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCertificationFullReplace(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.createCertification(), http.MethodPost, "/certifications", map[string]any{
		"title":  "Old name",
		"issuer": "Issuer Inc",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created certificationResponse
	decodeResponse(t, rec, &created)

	updateRec := performRequest(t, h.updateCertification(), http.MethodPut, "/certifications", map[string]any{
		"id":    created.Certification.ID,
		"title": "New name",
	})
	require.Equal(t, http.StatusOK, updateRec.Code, updateRec.Body.String())

	listRec := performRequest(t, h.getAllCertifications(), http.MethodGet, "/certifications", nil)
	var certifications []models.Certification
	decodeResponse(t, listRec, &certifications)
	require.Len(t, certifications, 1)
	assert.Equal(t, "New name", certifications[0].Title)
	assert.Empty(t, certifications[0].Issuer)
}

func TestUpdateCertificationUnknownIDIsNotFound(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.updateCertification(), http.MethodPut, "/certifications", map[string]any{
		"id":    55,
		"title": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCertificationValidatesID(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.deleteCertification(), http.MethodDelete, "/certifications?id=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCertificationUnknownIDIsNotFound(t *testing.T) {
	h := newTestCertificationHandler(t)

	rec := performRequest(t, h.deleteCertification(), http.MethodDelete, "/certifications?id=9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
