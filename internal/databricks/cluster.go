// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package databricks

import (
	"fmt"
	"sort"
	"strings"
)

// ClusterInfo is the read-only snapshot returned by the clusters/get
// endpoint. The client never caches or mutates it. Cloud-specific and
// lifecycle fields are pointers because the API omits them for clusters
// where they do not apply.
type ClusterInfo struct {
	ClusterID        string `json:"cluster_id"`
	ClusterName      string `json:"cluster_name"`
	State            string `json:"state"`
	StateMessage     string `json:"state_message,omitempty"`
	CreatorUserName  string `json:"creator_user_name,omitempty"`
	SingleUserName   string `json:"single_user_name,omitempty"`
	PinnedByUserName string `json:"pinned_by_user_name,omitempty"`

	SparkVersion          string            `json:"spark_version,omitempty"`
	EffectiveSparkVersion string            `json:"effective_spark_version,omitempty"`
	SparkContextID        *int64            `json:"spark_context_id,omitempty"`
	SparkConf             map[string]string `json:"spark_conf,omitempty"`

	NodeTypeID           string           `json:"node_type_id,omitempty"`
	DriverNodeTypeID     string           `json:"driver_node_type_id,omitempty"`
	NumWorkers           int              `json:"num_workers,omitempty"`
	Autoscale            *Autoscale       `json:"autoscale,omitempty"`
	AzureAttributes      *AzureAttributes `json:"azure_attributes,omitempty"`
	InstanceSource       *InstanceSource  `json:"instance_source,omitempty"`
	DriverInstanceSource *InstanceSource  `json:"driver_instance_source,omitempty"`

	AutoterminationMinutes    int64          `json:"autotermination_minutes,omitempty"`
	EnableElasticDisk         bool           `json:"enable_elastic_disk,omitempty"`
	EnableLocalDiskEncryption bool           `json:"enable_local_disk_encryption,omitempty"`
	DiskSpec                  map[string]any `json:"disk_spec,omitempty"`
	DriverHealthy             bool           `json:"driver_healthy,omitempty"`

	ClusterSource       string `json:"cluster_source,omitempty"`
	DataSecurityMode    string `json:"data_security_mode,omitempty"`
	RuntimeEngine       string `json:"runtime_engine,omitempty"`
	InitScriptsSafeMode bool   `json:"init_scripts_safe_mode,omitempty"`

	CustomTags  map[string]string `json:"custom_tags,omitempty"`
	DefaultTags map[string]string `json:"default_tags,omitempty"`

	StartTime         *int64 `json:"start_time,omitempty"`
	TerminatedTime    *int64 `json:"terminated_time,omitempty"`
	LastStateLossTime *int64 `json:"last_state_loss_time,omitempty"`
	LastActivityTime  *int64 `json:"last_activity_time,omitempty"`
	LastRestartedTime *int64 `json:"last_restarted_time,omitempty"`

	TerminationReason *TerminationReason `json:"termination_reason,omitempty"`
}

// Autoscale bounds the worker count for autoscaling clusters.
type Autoscale struct {
	MinWorkers int `json:"min_workers"`
	MaxWorkers int `json:"max_workers"`
}

// AzureAttributes holds the Azure-specific provisioning settings.
type AzureAttributes struct {
	FirstOnDemand   int     `json:"first_on_demand,omitempty"`
	Availability    string  `json:"availability,omitempty"`
	SpotBidMaxPrice float64 `json:"spot_bid_max_price,omitempty"`
}

// InstanceSource names the node type an instance was provisioned from.
type InstanceSource struct {
	NodeTypeID string `json:"node_type_id,omitempty"`
}

// TerminationReason explains why a terminated cluster stopped.
type TerminationReason struct {
	Code       string            `json:"code,omitempty"`
	Type       string            `json:"type,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// String renders the cluster as a multi-line human-readable block, one
// labeled field per line. Optional fields are skipped when absent.
func (c ClusterInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cluster Information:\n")
	fmt.Fprintf(&b, "  ID: %s\n", c.ClusterID)
	fmt.Fprintf(&b, "  Name: %s\n", c.ClusterName)
	fmt.Fprintf(&b, "  State: %s\n", c.State)
	if c.StateMessage != "" {
		fmt.Fprintf(&b, "  State Message: %s\n", c.StateMessage)
	}
	if c.CreatorUserName != "" {
		fmt.Fprintf(&b, "  Created by: %s\n", c.CreatorUserName)
	}
	if c.SparkVersion != "" {
		fmt.Fprintf(&b, "  Spark Version: %s\n", c.SparkVersion)
	}
	if c.EffectiveSparkVersion != "" && c.EffectiveSparkVersion != c.SparkVersion {
		fmt.Fprintf(&b, "  Effective Spark Version: %s\n", c.EffectiveSparkVersion)
	}
	if c.NodeTypeID != "" {
		fmt.Fprintf(&b, "  Node Type ID: %s\n", c.NodeTypeID)
	}
	if c.DriverNodeTypeID != "" {
		fmt.Fprintf(&b, "  Driver Node Type ID: %s\n", c.DriverNodeTypeID)
	}
	if c.Autoscale != nil {
		fmt.Fprintf(&b, "  Autoscale: %d-%d workers\n", c.Autoscale.MinWorkers, c.Autoscale.MaxWorkers)
	} else {
		fmt.Fprintf(&b, "  Number of Workers: %d\n", c.NumWorkers)
	}
	if c.AzureAttributes != nil {
		fmt.Fprintf(&b, "  Azure Attributes:\n")
		fmt.Fprintf(&b, "    First On Demand: %d\n", c.AzureAttributes.FirstOnDemand)
		fmt.Fprintf(&b, "    Availability: %s\n", c.AzureAttributes.Availability)
		fmt.Fprintf(&b, "    Spot Bid Max Price: %g\n", c.AzureAttributes.SpotBidMaxPrice)
	}
	if len(c.SparkConf) > 0 {
		fmt.Fprintf(&b, "  Spark Configuration:\n")
		writeSortedMap(&b, c.SparkConf)
	}
	fmt.Fprintf(&b, "  Autotermination Minutes: %d\n", c.AutoterminationMinutes)
	if c.ClusterSource != "" {
		fmt.Fprintf(&b, "  Cluster Source: %s\n", c.ClusterSource)
	}
	if c.DataSecurityMode != "" {
		fmt.Fprintf(&b, "  Data Security Mode: %s\n", c.DataSecurityMode)
	}
	if c.RuntimeEngine != "" {
		fmt.Fprintf(&b, "  Runtime Engine: %s\n", c.RuntimeEngine)
	}
	if c.SingleUserName != "" {
		fmt.Fprintf(&b, "  Single User Name: %s\n", c.SingleUserName)
	}
	if len(c.CustomTags) > 0 {
		fmt.Fprintf(&b, "  Custom Tags:\n")
		writeSortedMap(&b, c.CustomTags)
	}
	if c.TerminationReason != nil {
		fmt.Fprintf(&b, "  Termination Reason:\n")
		fmt.Fprintf(&b, "    Code: %s\n", c.TerminationReason.Code)
		fmt.Fprintf(&b, "    Type: %s\n", c.TerminationReason.Type)
		if len(c.TerminationReason.Parameters) > 0 {
			fmt.Fprintf(&b, "    Parameters:\n")
			for _, k := range sortedKeys(c.TerminationReason.Parameters) {
				fmt.Fprintf(&b, "      %s: %s\n", k, c.TerminationReason.Parameters[k])
			}
		}
	}
	return b.String()
}

func writeSortedMap(b *strings.Builder, m map[string]string) {
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(b, "    %s: %s\n", k, m[k])
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
