// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package databricks

import (
	"context"
	"net/url"
)

// GetCluster fetches the current snapshot of a cluster by id.
func (s *Session) GetCluster(ctx context.Context, clusterID string) (*ClusterInfo, error) {
	var info ClusterInfo
	endpoint := "api/2.0/clusters/get?cluster_id=" + url.QueryEscape(clusterID)
	if err := s.do(ctx, "GET", endpoint, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
