// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package databricks

import "context"

// JobRunRequest is the body of POST api/2.1/jobs/run-now. Only JobID is
// required; the parameter collections match the task types the job defines
// and are passed through untouched.
type JobRunRequest struct {
	JobID             int64             `json:"job_id"`
	IdempotencyToken  string            `json:"idempotency_token,omitempty"`
	Queue             *QueueSettings    `json:"queue,omitempty"`
	JarParams         []string          `json:"jar_params,omitempty"`
	NotebookParams    map[string]string `json:"notebook_params,omitempty"`
	PythonParams      []string          `json:"python_params,omitempty"`
	SparkSubmitParams []string          `json:"spark_submit_params,omitempty"`
	PythonNamedParams map[string]string `json:"python_named_params,omitempty"`
	PipelineParams    map[string]bool   `json:"pipeline_params,omitempty"`
	SQLParams         map[string]string `json:"sql_params,omitempty"`
	DbtCommands       []string          `json:"dbt_commands,omitempty"`
	JobParameters     map[string]string `json:"job_parameters,omitempty"`
}

// QueueSettings controls whether the run queues when the job is busy.
type QueueSettings struct {
	Enabled bool `json:"enabled"`
}

// JobRunResponse identifies the triggered run.
type JobRunResponse struct {
	RunID       int64  `json:"run_id"`
	NumberInJob *int64 `json:"number_in_job,omitempty"`
}

// RunJobNow triggers one run of an existing job and returns its run id.
func (s *Session) RunJobNow(ctx context.Context, req JobRunRequest) (*JobRunResponse, error) {
	var resp JobRunResponse
	if err := s.do(ctx, "POST", "api/2.1/jobs/run-now", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
