package config

import "testing"

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load must fail without MONGO_URI")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB_NAME", "")
	t.Setenv("MONGO_COLLECTION", "")
	t.Setenv("TECHNICIANS_SERVICE_URL", "")
	t.Setenv("CLIENTS_SERVICE_URL", "")
	t.Setenv("ACTIVITIES_SERVICE_URL", "")
	t.Setenv("LOG_FILE_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MongoDBName != "assignments_db" || cfg.MongoCollection != "assignments" {
		t.Fatalf("mongo defaults = %s/%s", cfg.MongoDBName, cfg.MongoCollection)
	}
	if cfg.TechniciansServiceURL == "" || cfg.ClientsServiceURL == "" || cfg.ActivitiesServiceURL == "" {
		t.Fatal("collaborator URLs must have defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB_NAME", "verifika")
	t.Setenv("TECHNICIANS_SERVICE_URL", "http://technicians:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MongoDBName != "verifika" {
		t.Fatalf("MongoDBName = %s", cfg.MongoDBName)
	}
	if cfg.TechniciansServiceURL != "http://technicians:9000" {
		t.Fatalf("TechniciansServiceURL = %s", cfg.TechniciansServiceURL)
	}
}
