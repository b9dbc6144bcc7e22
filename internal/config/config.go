package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"sync"
)

type Config struct {
	Env   string `yaml:"env" env:"APP_ENV" env-default:"local"`
	Mongo struct {
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"mdb.26vlivz.mongodb.net"`
		User     string `yaml:"user" env:"USER_DB" env-default:""`
		Password string `yaml:"password" env:"USER_PASS" env-default:""`
		AppName  string `yaml:"app_name" env:"MONGO_APP_NAME" env-default:"MDB"`
	} `yaml:"mongo"`
	Firebase struct {
		CredentialsFile string `yaml:"credentials_file" env:"FIREBASE_CREDENTIALS" env-default:"serviceAccountKey.json"`
	} `yaml:"firebase"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"PORT" env-default:"3000"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

// MustLoad reads the yaml config when the file exists and falls back to
// environment variables alone otherwise.
func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if _, statErr := os.Stat(path); statErr == nil {
			err = cleanenv.ReadConfig(path, instance)
		} else {
			err = cleanenv.ReadEnv(instance)
		}
		if err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
