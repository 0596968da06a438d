/*
Package models defines the management-API object model that vigil assembles
from command-line input: alert rule conditions and actions, autoscale metric
triggers, scale actions, profiles, and action-group receivers.

All objects are plain data structs created once and never mutated afterwards.
Fields the CLI cannot know at parse time (resource URIs, time grain, statistic,
cooldown) are pointers left nil until the binding stage fills them in; they are
never defaulted to a value that could be mistaken for real input.
*/
package models
