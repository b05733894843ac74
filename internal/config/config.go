package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
	AWS     *awsConfig
}

type svcConfig struct {
	Port int `envconfig:"PORT" default:"8080"`
}

// awsConfig carries DynamoDB connectivity. The defaults are
// local-friendly: DynamoDB Local does not validate credentials but the
// AWS SDK insists on having some.
type awsConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""`
	CustomersTable   string `envconfig:"CUSTOMERS_TABLE" default:"customers"`
	EstimatesTable   string `envconfig:"ESTIMATES_TABLE" default:"estimates"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
