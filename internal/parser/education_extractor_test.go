package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEducationExtractor() *EducationExtractor {
	return NewEducationExtractor(NewLineClassifier(0, nil))
}

// TestEducationExtractBasic 测试学位、学校与日期区间的提取
func TestEducationExtractBasic(t *testing.T) {
	block := `Bachelor of Science in Computer Science
University of Technology
2016-2020`

	entries := newTestEducationExtractor().Extract(block)
	require.Len(t, entries, 1)

	edu := entries[0]
	assert.Equal(t, 1, edu.ID)
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Degree)
	assert.Equal(t, "University of Technology", edu.School)
	assert.Equal(t, "2016", edu.StartDate)
	assert.Equal(t, "2020", edu.EndDate)
}

// TestEducationExtractSingleYearIsGraduation 单个年份视为毕业年份，填入EndDate
func TestEducationExtractSingleYearIsGraduation(t *testing.T) {
	block := `B.S. in Computer Science
MIT
2019`

	entries := newTestEducationExtractor().Extract(block)
	require.Len(t, entries, 1)
	assert.Equal(t, "B.S. in Computer Science", entries[0].Degree)
	assert.Equal(t, "MIT", entries[0].School)
	assert.Empty(t, entries[0].StartDate)
	assert.Equal(t, "2019", entries[0].EndDate)
}

// TestEducationExtractMultipleEntries 空行分隔的多条教育经历
func TestEducationExtractMultipleEntries(t *testing.T) {
	block := `Master of Science in Data Science
Stanford University
2020-2022

Bachelor of Arts in Mathematics
State College
2016-2020`

	entries := newTestEducationExtractor().Extract(block)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "Stanford University", entries[0].School)
	assert.Equal(t, 2, entries[1].ID)
	assert.Equal(t, "State College", entries[1].School)
}

// TestEducationExtractLocationAndDescription 地点行与剩余描述行的归类
func TestEducationExtractLocationAndDescription(t *testing.T) {
	block := `MBA
Harvard Business School
Boston, MA
Graduated with honors`

	entries := newTestEducationExtractor().Extract(block)
	require.Len(t, entries, 1)
	assert.Equal(t, "MBA", entries[0].Degree)
	assert.Equal(t, "Harvard Business School", entries[0].School)
	assert.Equal(t, "Boston, MA", entries[0].Location)
	assert.Equal(t, "Graduated with honors", entries[0].Description)
}

// TestEducationExtractDropsNoise 既无学位也无学校的段落应被丢弃
func TestEducationExtractDropsNoise(t *testing.T) {
	entries := newTestEducationExtractor().Extract("2016-2020")
	assert.Empty(t, entries)
}

// TestEducationExtractEmptyBlock 空块返回nil
func TestEducationExtractEmptyBlock(t *testing.T) {
	assert.Nil(t, newTestEducationExtractor().Extract(" \n "))
}
