package services

import (
	"context"

	"verifika-project/microservices/assignments-service/models"
)

type fakeTechnicianDirectory struct {
	technicians map[string]models.Technician
	err         error
}

func (f *fakeTechnicianDirectory) GetTechnician(_ context.Context, id string) (*models.Technician, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	technician, ok := f.technicians[id]
	if !ok {
		return nil, false, nil
	}
	return &technician, true, nil
}

type fakeClientDirectory struct {
	clients map[string]models.Client
	err     error
}

func (f *fakeClientDirectory) GetClient(_ context.Context, id string) (*models.Client, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	client, ok := f.clients[id]
	if !ok {
		return nil, false, nil
	}
	return &client, true, nil
}

func activeTechnicians() *fakeTechnicianDirectory {
	return &fakeTechnicianDirectory{technicians: map[string]models.Technician{
		"tech-1": {ID: "tech-1", Active: true, Competencies: []string{"SAP", "ABAP"}},
		"tech-2": {ID: "tech-2", Active: true, Competencies: []string{"Kotlin"}},
		"tech-3": {ID: "tech-3", Active: false, Competencies: []string{"SAP"}},
	}}
}

func activeClients() *fakeClientDirectory {
	return &fakeClientDirectory{clients: map[string]models.Client{
		"client-1": {ID: "client-1", Active: true},
		"client-2": {ID: "client-2", Active: false},
	}}
}
