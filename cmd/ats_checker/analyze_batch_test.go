package main

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/ats-checker/internal/analyzer"
	"github.com/jonathan/ats-checker/internal/ingestion"
	"github.com/jonathan/ats-checker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectJobPaths(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b.txt", "Go")
	writeFixture(t, dir, "a.md", "Python")
	writeFixture(t, dir, "notes.rtf", "ignored")
	writeFixture(t, dir, ".hidden.txt", "ignored")

	paths, err := collectJobPaths([]string{"explicit.txt"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"explicit.txt",
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.txt"),
	}, paths)

	_, err = collectJobPaths(nil, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLoadJobs(t *testing.T) {
	a := analyzer.New(nil, analyzer.Options{})
	dirA := t.TempDir()
	dirB := t.TempDir()

	paths := []string{
		writeFixture(t, dirA, "job.txt", "Python"),
		writeFixture(t, dirB, "job.txt", "Go"),
		writeFixture(t, dirA, "other.txt", "SQL"),
	}

	jobs, err := loadJobs(a, paths)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, paths[0], jobs[0].Name)
	assert.Equal(t, paths[1], jobs[1].Name)
	assert.Equal(t, "other.txt", jobs[2].Name)
	assert.Equal(t, "SQL", jobs[2].Text)
}

func TestLoadJobs_TooLarge(t *testing.T) {
	a := analyzer.New(nil, analyzer.Options{MaxInputBytes: 3})
	path := writeFixture(t, t.TempDir(), "job.txt", "Python")

	_, err := loadJobs(a, []string{path})
	var inputErr *analyzer.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestRunBatch(t *testing.T) {
	a := analyzer.New(nil, analyzer.Options{})
	resume := &ingestion.Document{Path: "cv.txt", Text: "Python and SQL"}

	report, err := runBatch(context.Background(), a, resume, []types.JobInput{
		{Name: "java.txt", Text: "Java"},
		{Name: "python.txt", Text: "Python"},
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, "cv.txt", report.Resume)
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, "python.txt", report.Entries[0].Job)
}

func TestAnalyzeBatchCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()
	jobsDir := filepath.Join(dir, "jobs")
	require.NoError(t, os.Mkdir(jobsDir, 0755))

	resume := writeFixture(t, dir, "cv.txt", "Experience: Python, SQL and Docker")
	writeFixture(t, jobsDir, "data.txt", "Python and SQL")
	writeFixture(t, jobsDir, "mobile.txt", "Swift and Kotlin")

	cmd := exec.Command(binaryPath, "analyze-batch", "--resume", resume, "--jobs-dir", jobsDir, "--concurrency", "2")
	output, err := cmd.Output()
	require.NoError(t, err)

	var report types.BatchReport
	require.NoError(t, json.Unmarshal(output, &report))
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "data.txt", report.Entries[0].Job)
	assert.Greater(t, report.Entries[0].Result.Score, report.Entries[1].Result.Score)
}

func TestAnalyzeBatchCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "analyze-batch", "--job", "a.txt").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")

	output, err = exec.Command(binaryPath, "analyze-batch", "--resume", "cv.txt").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "must provide --job or --jobs-dir")
}
