package catalog

type namePair struct {
	Name string
	ID   string
}

// serviceNameTable maps canonical display names to internal service ids.
// Order matters: alias matching walks it top to bottom.
var serviceNameTable = []namePair{
	{"API Gateway", "apigateway"},
	{"CloudFront", "cloudfront"},
	{"CloudWatchAlarm", "cloudwatch"},
	{"CloudWatchLogs", "cloudwatch-logs"},
	{"CloudWatchEvent", "eventbridge"},
	{"DMS", "dms"},
	{"DocumentDB", "documentdb"},
	{"DynamoDB", "dynamodb"},
	{"EC2", "ec2"},
	{"ECR", "ecr"},
	{"EKS", "eks"},
	{"ELB", "elb"},
	{"ElastiCache", "elasticache"},
	{"Glue", "glue"},
	{"IAM", "iam"},
	{"Kinesis", "kinesis"},
	{"KMS", "kms"},
	{"Lambda", "lambda"},
	{"Kafka", "msk"},
	{"MSK", "msk"},
	{"RDS", "rds"},
	{"Route53", "route53"},
	{"S3", "s3"},
	{"SageMaker", "sagemaker"},
	{"SecretsManager", "secrets"},
	{"SNS", "sns"},
	{"SQS", "sqs"},
	{"VPC", "vpc"},
	{"WAF", "waf"},
}

// billingNameTable maps Cost Explorer service names to internal service ids
var billingNameTable = []namePair{
	{"AWS Lambda", "lambda"},
	{"Amazon Relational Database Service", "rds"},
	{"Amazon Elastic Compute Cloud - Compute", "ec2"},
	{"EC2 - Other", "ec2"},
	{"Amazon Virtual Private Cloud", "vpc"},
	{"Amazon Simple Storage Service", "s3"},
	{"Amazon CloudFront", "cloudfront"},
	{"Amazon CloudWatch", "cloudwatch"},
	{"AmazonCloudWatch", "cloudwatch"},
	{"CloudWatch Events", "eventbridge"},
	{"Amazon API Gateway", "apigateway"},
	{"Amazon Elastic Kubernetes Service", "eks"},
	{"Amazon Elastic Container Service for Kubernetes", "eks"},
	{"Elastic Load Balancing", "elb"},
	{"Amazon ElastiCache", "elasticache"},
	{"AWS Glue", "glue"},
	{"AWS Identity and Access Management", "iam"},
	{"AWS Key Management Service", "kms"},
	{"Amazon Kinesis", "kinesis"},
	{"Amazon DynamoDB", "dynamodb"},
	{"Amazon Route 53", "route53"},
	{"Amazon SageMaker", "sagemaker"},
	{"AWS Secrets Manager", "secrets"},
	{"Amazon Simple Notification Service", "sns"},
	{"Amazon Simple Queue Service", "sqs"},
	{"Amazon Elastic Container Registry (ECR)", "ecr"},
	{"Amazon EC2 Container Registry (ECR)", "ecr"},
	{"AWS WAF", "waf"},
}

// serviceCategories maps canonical display names to UI categories
var serviceCategories = map[string]string{
	// Compute
	"EC2": "compute", "AMI": "compute", "ECS": "compute",
	"ElasticBeanstalk": "compute", "Lambda": "compute", "ASG": "compute", "EKS": "compute",
	// Database
	"RDS": "database", "DynamoDB": "database", "ElastiCache": "database",
	"DocumentDB": "database", "Neptune": "database", "Redshift": "database",
	// Storage
	"S3": "storage", "EBS": "storage", "EFS": "storage",
	"Snapshots": "storage", "ECR": "storage", "StorageGateway": "storage",
	// Networking
	"VPC": "networking", "ELB": "networking", "Route53": "networking",
	"CloudFront": "networking", "ElasticIP": "networking", "VPCPeering": "networking",
	// Integration
	"SQS": "integration", "SNS": "integration", "API Gateway": "integration",
	"StepFunctions": "integration", "SES": "integration",
	"Kinesis": "integration", "MSK": "integration", "Kafka": "integration",
	// Security
	"IAM": "security", "KMS": "security", "SecretsManager": "security",
	"ACM": "security", "WAF": "security", "Shield": "security",
	"GuardDuty": "security", "Inspector": "security", "Organizations": "security",
	// Monitoring
	"CloudWatchAlarm": "monitoring", "CloudWatchLogs": "monitoring", "CloudWatchEvent": "monitoring",
	// Analytics
	"Glue": "analytics", "Athena": "analytics", "EMR": "analytics",
	"OpenSearch": "analytics", "QuickSight": "analytics",
	// DevOps
	"CloudFormation": "devops_tools", "CodeBuild": "devops_tools",
	"CodeCommit": "devops_tools", "CodeDeploy": "devops_tools", "CodePipeline": "devops_tools",
	// Management & Governance
	"CloudTrail": "management_governance", "AWSConfig": "management_governance",
	"SSM": "management_governance", "ControlTower": "management_governance",
	"ServiceCatalog": "management_governance",
	// Migration
	"DataSync": "migration_transfer", "MGN": "migration_transfer",
	"MigrationHub": "migration_transfer", "Snowball": "migration_transfer",
	"Transfer": "migration_transfer", "DMS": "migration_transfer", "DatabaseMigrationService": "migration_transfer",
	// Cost Management
	"Budgets": "cost_management", "ComputeOptimizer": "cost_management",
	"CostExplorer": "cost_management", "CUR": "cost_management",
	"ReservedInstances": "cost_management", "SavingsPlans": "cost_management",
	// AI/ML
	"SageMaker": "ai_ml", "Comprehend": "ai_ml", "Lex": "ai_ml",
	"Polly": "ai_ml", "Rekognition": "ai_ml", "Textract": "ai_ml",
}
