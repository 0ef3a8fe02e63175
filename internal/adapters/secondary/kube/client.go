// Package kube probes the backend workloads through the Kubernetes API.
package kube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"release-management-service/internal/config"
	"release-management-service/internal/core/domain"
	output "release-management-service/internal/core/ports/output"
)

var deploymentGVR = schema.GroupVersionResource{
	Group:    "apps",
	Version:  "v1",
	Resource: "deployments",
}

type clusterClient struct {
	client    dynamic.Interface
	enabled   bool
	namespace string
	selector  string
}

// NewClusterClient creates a cluster probe. A disabled config yields a client
// that reports itself unavailable.
func NewClusterClient(cfg *config.KubernetesConfig) (output.ClusterClient, error) {
	if !cfg.Enabled {
		return &clusterClient{enabled: false}, nil
	}

	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		restCfg, err = clientcmd.BuildConfigFromFlags("", filepath.Join(home, ".kube", "config"))
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return newClusterClient(client, cfg.Namespace, cfg.Selector), nil
}

func newClusterClient(client dynamic.Interface, namespace, selector string) *clusterClient {
	if namespace == "" {
		namespace = "nmt"
	}
	return &clusterClient{
		client:    client,
		enabled:   true,
		namespace: namespace,
		selector:  selector,
	}
}

func (c *clusterClient) IsAvailable() bool {
	return c.enabled
}

// WorkloadStatuses returns one component per matching deployment, sorted by name.
func (c *clusterClient) WorkloadStatuses(ctx context.Context) ([]domain.ComponentStatus, error) {
	if !c.enabled {
		return nil, nil
	}

	list, err := c.client.Resource(deploymentGVR).
		Namespace(c.namespace).
		List(ctx, metav1.ListOptions{LabelSelector: c.selector})
	if err != nil {
		return nil, fmt.Errorf("list deployments: %w", err)
	}

	statuses := make([]domain.ComponentStatus, 0, len(list.Items))
	for i := range list.Items {
		statuses = append(statuses, deploymentStatus(&list.Items[i]))
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}

func deploymentStatus(obj *unstructured.Unstructured) domain.ComponentStatus {
	desired, found, _ := unstructured.NestedInt64(obj.Object, "spec", "replicas")
	if !found {
		desired = 1
	}
	ready, _, _ := unstructured.NestedInt64(obj.Object, "status", "readyReplicas")

	status := domain.ComponentStatus{
		Name:    "k8s/" + obj.GetName(),
		Message: fmt.Sprintf("%d/%d replicas ready", ready, desired),
	}
	switch {
	case desired == 0:
		status.Status = domain.ComponentUnknown
		status.Message = "scaled to zero"
	case ready >= desired:
		status.Status = domain.ComponentHealthy
	case ready > 0:
		status.Status = domain.ComponentDegraded
	default:
		status.Status = domain.ComponentUnhealthy
	}
	return status
}

var _ output.ClusterClient = (*clusterClient)(nil)
