package generate

import "text/template"

// questionPlainTemplate is the unstyled question page scaffold. Pages
// generated from it are later rewritten by `wafctl style`.
var questionPlainTemplate = template.Must(template.New("question-plain").Parse(`---
title: {{.ID}} - {{.Title}}
layout: default
parent: {{.Pillar}}
nav_order: {{.NavOrder}}
---

# {{.ID}}: {{.Title}}

*This page contains guidance for addressing this question from the AWS Well-Architected Framework.*

## Best Practices

*Add best practices for this question here.*

## Implementation Guidance

1. **Step 1**: Description of first implementation step.

2. **Step 2**: Description of second implementation step.

3. **Step 3**: Description of third implementation step.

## AWS Services to Consider

- **Service 1** - Description of how this service helps
- **Service 2** - Description of how this service helps
- **Service 3** - Description of how this service helps

## Related Resources

- [AWS Well-Architected Framework - {{.Pillar}} Pillar](https://docs.aws.amazon.com/wellarchitected/latest/{{.PillarDocSlug}}-pillar/welcome.html)
- [Related Documentation Link 1](https://aws.amazon.com/)
- [Related Documentation Link 2](https://aws.amazon.com/)
`))

// questionStyledTemplate emits the div-wrapped form directly.
var questionStyledTemplate = template.Must(template.New("question-styled").Parse(`---
title: {{.ID}} - {{.Title}}
layout: default
parent: {{.Pillar}}
nav_order: {{.NavOrder}}
---

<div class="pillar-header">
  <h1>{{.ID}}: {{.Title}}</h1>
  <p>*This page contains guidance for addressing this question from the AWS Well-Architected Framework.*</p>
</div>

## Best Practices

<div class="best-practice">
  <h4>Best Practice 1</h4>
  <p>Description of the first best practice for this question.</p>
</div>

<div class="best-practice">
  <h4>Best Practice 2</h4>
  <p>Description of the second best practice for this question.</p>
</div>

<div class="best-practice">
  <h4>Best Practice 3</h4>
  <p>Description of the third best practice for this question.</p>
</div>

## Implementation Guidance

<div class="implementation-step">
  <h4>1. First Step</h4>
  <p>Description of the first implementation step.</p>
</div>

<div class="implementation-step">
  <h4>2. Second Step</h4>
  <p>Description of the second implementation step.</p>
</div>

<div class="implementation-step">
  <h4>3. Third Step</h4>
  <p>Description of the third implementation step.</p>
</div>

## AWS Services to Consider

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Service 1</h4>
    <p>Description of how this service helps with this question.</p>
  </div>
</div>

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Service 2</h4>
    <p>Description of how this service helps with this question.</p>
  </div>
</div>

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Service 3</h4>
    <p>Description of how this service helps with this question.</p>
  </div>
</div>

<div class="related-resources">
  <h2>Related Resources</h2>
  <ul>
    <li><a href="https://docs.aws.amazon.com/wellarchitected/latest/{{.PillarDocSlug}}-pillar/welcome.html">AWS Well-Architected Framework - {{.Pillar}} Pillar</a></li>
    <li><a href="https://aws.amazon.com/">Related Documentation Link 1</a></li>
    <li><a href="https://aws.amazon.com/">Related Documentation Link 2</a></li>
  </ul>
</div>
`))

// practiceTemplate is the best-practice page scaffold, nested under
// its parent question in the navigation.
var practiceTemplate = template.Must(template.New("practice").Parse(`---
title: {{.ID}} - {{.Title}}
layout: default
parent: {{.QuestionID}} - {{.QuestionTitle}}
grand_parent: {{.Pillar}}
nav_order: {{.NavOrder}}
---

<div class="pillar-header">
  <h1>{{.ID}}: {{.Title}}</h1>
  <p>{{.Description}}</p>
</div>

## Implementation guidance

### Key steps for implementing this best practice:

1. **Step 1**: Description of first implementation step.

2. **Step 2**: Description of second implementation step.

3. **Step 3**: Description of third implementation step.

4. **Step 4**: Description of fourth implementation step.

## AWS services to consider

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Service 1</h4>
    <p>Description of how this service helps with this best practice.</p>
  </div>
</div>

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Service 2</h4>
    <p>Description of how this service helps with this best practice.</p>
  </div>
</div>

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Service 3</h4>
    <p>Description of how this service helps with this best practice.</p>
  </div>
</div>

<div class="related-resources">
  <h2>Related Resources</h2>
  <ul>
    <li><a href="https://docs.aws.amazon.com/wellarchitected/latest/{{.PillarDocSlug}}-pillar/welcome.html">AWS Well-Architected Framework - {{.Pillar}} Pillar</a></li>
    <li><a href="https://docs.aws.amazon.com/wellarchitected/latest/framework/{{.QuestionDocSlug}}.html">{{.QuestionID}}: {{.QuestionTitle}}</a></li>
    <li><a href="https://aws.amazon.com/architecture/well-architected/">AWS Well-Architected</a></li>
  </ul>
</div>
`))

// indexTemplate is the styled pillar index page. The Liquid block in
// the questions section is rendered by the site generator at build
// time; `wafctl question list` later replaces it with explicit cards.
var indexTemplate = template.Must(template.New("index").Parse(`---
title: {{.Title}}
layout: default
nav_order: {{.NavOrder}}
has_children: true
permalink: /docs/{{.Slug}}
---

<div class="pillar-header">
  <h1>{{.Title}} Pillar</h1>
  <p>{{.Description}}</p>
</div>

The {{.Title}} pillar includes the ability to support development and run workloads effectively, gain insight into their operations, and to continuously improve supporting processes and procedures to deliver business value.

## Key Areas

The {{.Title}} pillar includes the following key areas:

{{range .KeyAreas}}- **{{.Name}}** - {{.Detail}}
{{end}}
## Questions

The AWS Well-Architected Framework provides a set of questions that allows you to review an existing or proposed architecture. It also provides a set of AWS best practices for each pillar.

<div class="question-cards">
  {% for child in site.pages %}
    {% if child.parent == page.title %}
      <div class="question-card">
        <h3>{{"{{"}} child.title {{"}}"}}</h3>
        <a href="{{"{{"}} child.url | absolute_url {{"}}"}}">View details →</a>
      </div>
    {% endif %}
  {% endfor %}
</div>

## AWS Services for {{.Title}}

{{range .Services}}<div class="aws-service">
  <div class="aws-service-content">
    <h4>{{.Name}}</h4>
    <p>{{.Description}}</p>
  </div>
</div>

{{end}}<div class="related-resources">
  <h2>Related Resources</h2>
  <ul>
{{range .Resources}}    <li><a href="{{.URL}}">{{.Name}}</a></li>
{{end}}  </ul>
</div>`))
