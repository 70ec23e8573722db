package service

import "time"

type nopMetrics struct{}

func (nopMetrics) ReturnProcessed(float64, time.Duration) {}

func (nopMetrics) ReturnRejected(string, time.Duration) {}

func (nopMetrics) RentalCreated() {}
