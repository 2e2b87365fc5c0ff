package geometry

import (
	"github.com/jfeld/go-pathtracer/pkg/core"
	"github.com/jfeld/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be intersected by rays.
// Hit reports the nearest intersection with t in the exclusive interval
// (tMin, tMax), or false when the ray misses.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// HittableList is an ordered collection of hittable objects that itself
// behaves as a single hittable.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit finds the globally nearest intersection by narrowing the upper bound
// of the search interval to the closest hit found so far. The result is
// independent of insertion order; equidistant surfaces resolve to the first
// one found because later tests use an exclusive upper bound.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
