package kube

import (
	"context"
)

// LabelKey is the pod label the grid controller watches.
const LabelKey = "game-status"

// Publisher pushes the cell's committed aliveness to the control plane by
// patching this pod's game-status label. It satisfies cell.Publisher: a
// failed patch is reported once and dropped by the engine, never retried.
type Publisher struct {
	client    *Client
	namespace string
	pod       string
}

// NewPublisher creates a publisher targeting the given pod.
func NewPublisher(client *Client, namespace, pod string) *Publisher {
	return &Publisher{client: client, namespace: namespace, pod: pod}
}

// PublishAlive sets the game-status label to "alive" or "dead".
func (p *Publisher) PublishAlive(ctx context.Context, alive bool) error {
	value := "dead"
	if alive {
		value = "alive"
	}
	return p.client.PatchPodLabel(ctx, p.namespace, p.pod, LabelKey, value)
}
