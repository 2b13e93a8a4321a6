package catalog

// Default returns the compiled-in framework catalog.
// Callers get a fresh copy of the top-level struct but share the
// underlying slices; treat the result as read-only.
func Default() *Catalog {
	return &Catalog{
		Pillars:       defaultPillars,
		BestPractices: defaultBestPractices,
	}
}

var defaultPillars = []Pillar{
	{
		Name:        "Operational Excellence",
		Slug:        "operational-excellence",
		Abbr:        "OPS",
		NavOrder:    2,
		Description: "The operational excellence pillar focuses on running and monitoring systems to deliver business value, and continually improving processes and procedures.",
		KeyAreas: []string{
			"Organization - How teams are structured and how they collaborate",
			"Prepare - Design for operations and understand workload health",
			"Operate - Understand workload health and achieve operational success",
			"Evolve - Learn, share, and continuously improve",
		},
		Services: []Service{
			{Name: "AWS CloudFormation", Description: "Provides a common language to model and provision AWS and third-party resources in your cloud environment."},
			{Name: "AWS Config", Description: "Enables you to assess, audit, and evaluate the configurations of your AWS resources."},
			{Name: "AWS CloudTrail", Description: "Enables governance, compliance, operational auditing, and risk auditing of your AWS account."},
			{Name: "Amazon CloudWatch", Description: "Monitors your AWS resources and the applications you run on AWS in real time."},
			{Name: "AWS Systems Manager", Description: "Gives you visibility and control of your infrastructure on AWS."},
		},
		Resources: []Resource{
			{Name: "AWS Well-Architected Framework - Operational Excellence Pillar", URL: "https://docs.aws.amazon.com/wellarchitected/latest/operational-excellence-pillar/welcome.html"},
			{Name: "AWS Well-Architected", URL: "https://aws.amazon.com/architecture/well-architected/"},
			{Name: "DevOps on AWS", URL: "https://aws.amazon.com/devops/"},
		},
		Questions: []Question{
			{ID: "OPS01", Title: "How do you determine what your priorities are?"},
			{ID: "OPS02", Title: "How do you structure your organization to support your business outcomes?"},
			{ID: "OPS03", Title: "How does your organizational culture support your business outcomes?"},
			{ID: "OPS04", Title: "How do you design your workload so that you can understand its state?"},
			{ID: "OPS05", Title: "How do you reduce defects, ease remediation, and improve flow into production?"},
			{ID: "OPS06", Title: "How do you mitigate deployment risks?"},
			{ID: "OPS07", Title: "How do you know that you are ready to support a workload?"},
			{ID: "OPS08", Title: "How do you understand the health of your workload?"},
			{ID: "OPS09", Title: "How do you understand the health of your operations?"},
			{ID: "OPS10", Title: "How do you manage workload and operations events?"},
			{ID: "OPS11", Title: "How do you evolve operations?"},
		},
	},
	{
		Name:        "Security",
		Slug:        "security",
		Abbr:        "SEC",
		NavOrder:    3,
		Description: "The security pillar focuses on protecting information and systems. Key topics include confidentiality and integrity of data, identifying and managing who can do what with privilege management, protecting systems, and establishing controls to detect security events.",
		KeyAreas: []string{
			"Security Foundations - Implementing a strong identity foundation",
			"Identity and Access Management - Ensuring only authorized and authenticated users can access your resources",
			"Detection - Implementing monitoring, alerting, and audit actions",
			"Infrastructure Protection - Protecting systems and services within your workload",
			"Data Protection - Classifying data and implementing controls to protect it",
			"Incident Response - Responding to and mitigating the potential impact of security incidents",
		},
		Services: []Service{
			{Name: "AWS Identity and Access Management (IAM)", Description: "Enables you to manage access to AWS services and resources securely."},
			{Name: "Amazon GuardDuty", Description: "Provides intelligent threat detection for your AWS accounts and workloads."},
			{Name: "AWS Security Hub", Description: "Gives you a comprehensive view of your security alerts and security posture across your AWS accounts."},
			{Name: "AWS Key Management Service (KMS)", Description: "Makes it easy for you to create and manage cryptographic keys and control their use."},
			{Name: "AWS Shield", Description: "Provides protection against DDoS attacks for applications running on AWS."},
		},
		Resources: []Resource{
			{Name: "AWS Well-Architected Framework - Security Pillar", URL: "https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html"},
			{Name: "AWS Security Documentation", URL: "https://docs.aws.amazon.com/security/"},
			{Name: "AWS Security Blog", URL: "https://aws.amazon.com/blogs/security/"},
		},
		Questions: []Question{
			{ID: "SEC01", Title: "How do you securely operate your workload?"},
			{ID: "SEC02", Title: "How do you manage identities for people and machines?"},
			{ID: "SEC03", Title: "How do you manage permissions for people and machines?"},
			{ID: "SEC04", Title: "How do you detect and investigate security events?"},
			{ID: "SEC05", Title: "How do you protect your network resources?"},
			{ID: "SEC06", Title: "How do you protect your compute resources?"},
			{ID: "SEC07", Title: "How do you classify your data?"},
			{ID: "SEC08", Title: "How do you protect your data at rest?"},
			{ID: "SEC09", Title: "How do you protect your data in transit?"},
			{ID: "SEC10", Title: "How do you anticipate, respond to, and recover from incidents?"},
			{ID: "SEC11", Title: "How do you securely manage your AI workloads?"},
		},
	},
	{
		Name:        "Reliability",
		Slug:        "reliability",
		Abbr:        "REL",
		NavOrder:    4,
		Description: "The reliability pillar focuses on ensuring a workload performs its intended function correctly and consistently when it's expected to. This includes the ability to operate and test the workload through its total lifecycle.",
		KeyAreas: []string{
			"Foundations - Managing service quotas and network topology",
			"Workload Architecture - Designing distributed systems that withstand failures",
			"Change Management - Monitoring resources and implementing controlled changes",
			"Failure Management - Backing up data, designing for fault isolation, and planning for disaster recovery",
		},
		Services: []Service{
			{Name: "Amazon CloudWatch", Description: "Monitors your AWS resources and the applications you run on AWS in real time."},
			{Name: "AWS Auto Scaling", Description: "Monitors your applications and automatically adjusts capacity to maintain steady, predictable performance."},
			{Name: "Amazon RDS", Description: "Makes it easy to set up, operate, and scale a relational database in the cloud with high availability."},
			{Name: "AWS Elastic Disaster Recovery", Description: "Minimizes downtime and data loss with fast, reliable recovery of on-premises and cloud-based applications."},
			{Name: "AWS Backup", Description: "Centrally manages and automates backups across AWS services."},
		},
		Resources: []Resource{
			{Name: "AWS Well-Architected Framework - Reliability Pillar", URL: "https://docs.aws.amazon.com/wellarchitected/latest/reliability-pillar/welcome.html"},
			{Name: "Reliability on AWS", URL: "https://aws.amazon.com/reliability/"},
			{Name: "AWS Architecture Blog", URL: "https://aws.amazon.com/blogs/architecture/"},
		},
		Questions: []Question{
			{ID: "REL01", Title: "How do you manage service quotas and constraints?"},
			{ID: "REL02", Title: "How do you plan your network topology?"},
			{ID: "REL03", Title: "How do you design your workload service architecture?"},
			{ID: "REL04", Title: "How do you design interactions in a distributed system to prevent failures?"},
			{ID: "REL05", Title: "How do you design interactions in a distributed system to mitigate or withstand failures?"},
			{ID: "REL06", Title: "How do you monitor workload resources?"},
			{ID: "REL07", Title: "How do you design your workload to adapt to changes in demand?"},
			{ID: "REL08", Title: "How do you implement change?"},
			{ID: "REL09", Title: "How do you back up data?"},
			{ID: "REL10", Title: "How do you use fault isolation to protect your workload?"},
			{ID: "REL11", Title: "How do you design your workload to withstand component failures?"},
			{ID: "REL12", Title: "How do you test reliability?"},
			{ID: "REL13", Title: "How do you plan for disaster recovery?"},
		},
	},
	{
		Name:        "Performance Efficiency",
		Slug:        "performance-efficiency",
		Abbr:        "PERF",
		NavOrder:    5,
		Description: "The performance efficiency pillar focuses on using IT and computing resources efficiently. Key topics include selecting the right resource types and sizes based on workload requirements, monitoring performance, and making informed decisions to maintain efficiency as business needs evolve.",
		KeyAreas: []string{
			"Selection - Choosing the right compute, storage, database, and networking solutions",
			"Review - Continuously evaluating new services and technologies",
			"Monitoring - Ensuring resources are performing as expected",
			"Tradeoffs - Using caching, partitioning, and other techniques to improve performance",
		},
		Services: []Service{
			{Name: "Amazon EC2", Description: "Provides resizable compute capacity in the cloud with a wide selection of instance types."},
			{Name: "Amazon S3", Description: "Object storage built to store and retrieve any amount of data from anywhere."},
			{Name: "Amazon RDS", Description: "Makes it easy to set up, operate, and scale a relational database in the cloud."},
			{Name: "Amazon DynamoDB", Description: "Fast and flexible NoSQL database service for any scale."},
			{Name: "Amazon CloudFront", Description: "Fast content delivery network (CDN) service that securely delivers data, videos, applications, and APIs."},
		},
		Resources: []Resource{
			{Name: "AWS Well-Architected Framework - Performance Efficiency Pillar", URL: "https://docs.aws.amazon.com/wellarchitected/latest/performance-efficiency-pillar/welcome.html"},
			{Name: "AWS Performance Efficiency", URL: "https://aws.amazon.com/architecture/well-architected/performance-efficiency/"},
			{Name: "AWS Compute Blog", URL: "https://aws.amazon.com/blogs/compute/"},
		},
		Questions: []Question{
			{ID: "PERF01", Title: "How do you select the best performing architecture?"},
			{ID: "PERF02", Title: "How do you select your compute solution?"},
			{ID: "PERF03", Title: "How do you select your storage solution?"},
			{ID: "PERF04", Title: "How do you select your database solution?"},
			{ID: "PERF05", Title: "How do you configure your networking solution?"},
			{ID: "PERF06", Title: "How do you evolve your workload to take advantage of new releases?"},
			{ID: "PERF07", Title: "How do you monitor your resources to ensure they are performing?"},
			{ID: "PERF08", Title: "How do you use tradeoffs to improve performance?"},
		},
	},
	{
		Name:        "Cost Optimization",
		Slug:        "cost-optimization",
		Abbr:        "COST",
		NavOrder:    6,
		Description: "The cost optimization pillar focuses on avoiding unnecessary costs. Key topics include understanding and controlling where money is being spent, selecting the most appropriate and right number of resource types, analyzing spend over time, and scaling to meet business needs without overspending.",
		KeyAreas: []string{
			"Practice Cloud Financial Management - Implementing organizational processes for cost management",
			"Expenditure and Usage Awareness - Increasing visibility and accountability",
			"Cost-Effective Resources - Using the appropriate services and resources for your workload",
			"Manage Demand and Supply Resources - Scaling resources to match business requirements",
			"Optimize Over Time - Continuously reviewing and refining your cost optimization approach",
		},
		Services: []Service{
			{Name: "AWS Cost Explorer", Description: "Visualize, understand, and manage your AWS costs and usage over time."},
			{Name: "AWS Budgets", Description: "Set custom cost and usage budgets that alert you when your budget thresholds are exceeded."},
			{Name: "AWS Cost and Usage Report", Description: "Access comprehensive cost and usage data for your AWS account."},
			{Name: "AWS Trusted Advisor", Description: "Provides recommendations that help you follow AWS best practices for cost optimization."},
			{Name: "AWS Compute Optimizer", Description: "Recommends optimal AWS resources for your workloads to reduce costs."},
		},
		Resources: []Resource{
			{Name: "AWS Well-Architected Framework - Cost Optimization Pillar", URL: "https://docs.aws.amazon.com/wellarchitected/latest/cost-optimization-pillar/welcome.html"},
			{Name: "AWS Cost Management", URL: "https://aws.amazon.com/aws-cost-management/"},
			{Name: "AWS Cost Optimization Hub", URL: "https://aws.amazon.com/aws-cost-management/cost-optimization-hub/"},
		},
		Questions: []Question{
			{ID: "COST01", Title: "How do you implement cloud financial management?"},
			{ID: "COST02", Title: "How do you govern usage?"},
			{ID: "COST03", Title: "How do you monitor usage and cost?"},
			{ID: "COST04", Title: "How do you decommission resources?"},
			{ID: "COST05", Title: "How do you evaluate cost when you select services?"},
			{ID: "COST06", Title: "How do you meet cost targets when you select resource type, size and number?"},
			{ID: "COST07", Title: "How do you use pricing models to reduce cost?"},
			{ID: "COST08", Title: "How do you plan for data transfer charges?"},
			{ID: "COST09", Title: "How do you manage demand, and supply resources?"},
			{ID: "COST10", Title: "How do you evaluate new services?"},
			{ID: "COST11", Title: "How do you optimize your organization's expenditure on generative AI?"},
		},
	},
	{
		Name:        "Sustainability",
		Slug:        "sustainability",
		Abbr:        "SUS",
		NavOrder:    7,
		Description: "The sustainability pillar focuses on minimizing the environmental impacts of running cloud workloads. Key topics include a shared responsibility model for sustainability, understanding impact, and maximizing utilization to minimize required resources and reduce downstream impacts.",
		KeyAreas: []string{
			"Region Selection - Choosing Regions with lower carbon footprints",
			"User Behavior Patterns - Aligning user needs with sustainable practices",
			"Software and Architecture Patterns - Designing efficient applications",
			"Data Patterns - Implementing lifecycle policies and storage tiering",
			"Hardware Patterns - Using the minimum amount of hardware to meet your needs",
			"Development and Deployment Process - Optimizing development and testing environments",
		},
		Services: []Service{
			{Name: "AWS Customer Carbon Footprint Tool", Description: "Provides visibility into the carbon emissions associated with your AWS usage."},
			{Name: "Amazon EC2 Auto Scaling", Description: "Helps ensure you have the correct number of instances available to handle your application load."},
			{Name: "Amazon S3 Lifecycle Configurations", Description: "Automates moving objects to more cost-effective storage classes or deleting them."},
			{Name: "AWS Graviton Processors", Description: "Deliver better price performance for your cloud workloads with lower energy consumption."},
			{Name: "AWS Compute Optimizer", Description: "Helps you identify idle and underutilized resources."},
		},
		Resources: []Resource{
			{Name: "AWS Well-Architected Framework - Sustainability Pillar", URL: "https://docs.aws.amazon.com/wellarchitected/latest/sustainability-pillar/welcome.html"},
			{Name: "AWS Sustainability", URL: "https://sustainability.aboutamazon.com/environment/the-cloud"},
			{Name: "AWS and Sustainability", URL: "https://aws.amazon.com/about-aws/sustainability/"},
		},
		Questions: []Question{
			{ID: "SUS01", Title: "How do you select Regions to support your sustainability goals?"},
			{ID: "SUS02", Title: "How do you take advantage of user behavior patterns to support your sustainability goals?"},
			{ID: "SUS03", Title: "How do you take advantage of software and architecture patterns to support your sustainability goals?"},
			{ID: "SUS04", Title: "How do you take advantage of data access and usage patterns to support your sustainability goals?"},
			{ID: "SUS05", Title: "How do you take advantage of hardware patterns to support your sustainability goals?"},
			{ID: "SUS06", Title: "How do you take advantage of development and deployment process to support your sustainability goals?"},
		},
	},
}

var defaultBestPractices = map[string][]BestPractice{
	"SEC01": {
		{
			ID:          "SEC01-BP05",
			Title:       "Reduce security management scope",
			Description: "Reduce security management scope by minimizing the number of security tooling and processes that you need to maintain. For example, if you have multiple security tools that provide similar capabilities, evaluate if there is a compelling reason to maintain multiple tools.",
			NavOrder:    5,
		},
		{
			ID:          "SEC01-BP06",
			Title:       "Automate deployment of standard security controls",
			Description: "Automate testing and validation of all security controls. For example, scan items such as machine images and infrastructure as code templates for security vulnerabilities, irregularities, and drift from an established baseline before they are deployed. Tools and services, such as Amazon Inspector, can be used to automate host and network vulnerability assessments.",
			NavOrder:    6,
		},
		{
			ID:          "SEC01-BP07",
			Title:       "Identify threats and prioritize mitigations using a threat model",
			Description: "Use a threat model to identify and maintain a list of security threats. Prioritize your threats and adjust your security controls to prevent, detect, and respond. Revisit and reprioritize regularly.",
			NavOrder:    7,
		},
		{
			ID:          "SEC01-BP08",
			Title:       "Evaluate and implement new security services and features regularly",
			Description: "Evaluate and implement security services and features from AWS and AWS Partners that allow you to evolve the security posture of your workload.",
			NavOrder:    8,
		},
	},
	"SEC02": {
		{
			ID:          "SEC02-BP01",
			Title:       "Use strong sign-in mechanisms",
			Description: "Enforce minimum password length, and educate your users to avoid common or reused passwords. Enforce multi-factor authentication (MFA) with software or hardware mechanisms to provide an additional layer of verification.",
			NavOrder:    1,
		},
		{
			ID:          "SEC02-BP02",
			Title:       "Use temporary credentials",
			Description: "Require identities to dynamically acquire temporary credentials. For workforce identities, use AWS IAM Identity Center, or a federation with IAM roles to access AWS accounts. For machine identities, require the use of IAM roles instead of IAM users with long-term access keys.",
			NavOrder:    2,
		},
		{
			ID:          "SEC02-BP03",
			Title:       "Store and use secrets securely",
			Description: "For workforce and machine identities that require secrets, such as passwords to third-party applications, store them with automatic rotation using the latest industry standards in a specialized service.",
			NavOrder:    3,
		},
		{
			ID:          "SEC02-BP04",
			Title:       "Rely on a centralized identity provider",
			Description: "For workforce identities (your employees, contractors, and partners), rely on an identity provider that enables you to manage identities in a centralized place. This makes it easier to manage access across multiple applications and services because you are creating, managing, and revoking access from a single location.",
			NavOrder:    4,
		},
		{
			ID:          "SEC02-BP05",
			Title:       "Audit and rotate credentials periodically",
			Description: "When you cannot rely on temporary credentials and need to use long-term credentials, audit the credentials to ensure that the defined controls (such as MFA) are enforced, rotated regularly, and have the appropriate level of access.",
			NavOrder:    5,
		},
		{
			ID:          "SEC02-BP06",
			Title:       "Employ user groups and attributes",
			Description: "As the number of users you manage grows, you need to reduce the overhead of managing access. Place users with common security requirements in groups defined by your identity provider, and put mechanisms in place to ensure that user attributes that may be used for access control (such as department or location) are correct and updated.",
			NavOrder:    6,
		},
	},
}
