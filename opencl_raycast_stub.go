//go:build !opencl

package main

import (
	"errors"

	"gridcaster/internal/raycast"
)

type openCLRayCaster struct{}

func newOpenCLRayCaster(_ raycast.Grid, _ int) (*openCLRayCaster, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLRayCaster) Cast(_ raycast.Pose, _ int, dst []raycast.RayResult) ([]raycast.RayResult, error) {
	return dst, errors.New("OpenCL ray caster unavailable")
}

func (s *openCLRayCaster) Close() {}

func (s *openCLRayCaster) DeviceName() string { return "" }
