package render

import "github.com/jonathan/resume-wizard/internal/types"

func init() {
	register(types.TemplateExecutive, executiveMarkup)
}

// executiveMarkup is the refined serif layout: centered letter-spaced name,
// warm brown accent rules, generous spacing.
const executiveMarkup = `<style>
.executive { font-family: "Times New Roman", Times, serif; font-size: 11px; color: #2c2c2c; }
.executive .name { font-size: 22px; font-weight: bold; text-align: center; letter-spacing: 3px; text-transform: uppercase; color: #1a1a1a; }
.executive .headline { text-align: center; font-size: 11px; color: #4a4a4a; margin-top: 2px; }
.executive .contact { text-align: center; font-size: 10px; color: #4a4a4a; margin-top: 4px; }
.executive .rule { height: 1px; background: #8b7355; width: 96px; margin: 10px auto; }
.executive h2 { font-size: 12px; font-weight: bold; color: #1a1a1a; letter-spacing: 2px; text-transform: uppercase; text-align: center; margin: 14px 0 6px; }
.executive .row { display: flex; justify-content: space-between; }
.executive .job-title { font-weight: bold; color: #1a1a1a; }
.executive .company { font-style: italic; color: #3a3a3a; }
.executive .dates { font-size: 10px; color: #666; }
.executive ul { margin: 4px 0 0 0; padding: 0; list-style: none; }
.executive li { margin-bottom: 3px; color: #3a3a3a; }
.executive li::before { content: "\00B7"; color: #8b7355; font-weight: bold; margin-right: 6px; }
.executive .honors { font-style: italic; font-size: 10px; color: #666; }
.executive .center { text-align: center; }
</style>
<div class="executive">
  <div class="name">{{.Name}}</div>
  {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
  <div class="contact">{{.ContactLine}}{{if .LinkedIn}} | {{.LinkedIn}}{{end}}</div>
  <div class="rule"></div>
  {{if .Summary}}
  <section class="summary">
    <h2>Executive Summary</h2>
    <p class="center">{{.Summary}}</p>
  </section>
  {{end}}
  {{if .Experience}}
  <section class="experience">
    <h2>Professional Experience</h2>
    {{range .Experience}}
    <div class="entry">
      <div class="row"><span class="job-title">{{.Title}}</span><span class="dates">{{.Dates}}</span></div>
      <div class="company">{{.Company}}</div>
      {{if .Bullets}}
      <ul>
        {{range .Bullets}}<li>{{.}}</li>
        {{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Education}}
  <section class="education">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="row"><span class="job-title">{{.Degree}}</span><span class="dates">{{.Dates}}</span></div>
      <div class="company">{{.Institution}}</div>
      {{if .Honors}}<div class="honors">{{.Honors}}</div>{{end}}
      {{if .GPA}}<div class="honors">GPA: {{.GPA}}</div>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Skills}}
  <section class="skills">
    <h2>Core Competencies</h2>
    <p class="center">{{.SkillsLine}}</p>
  </section>
  {{end}}
  {{if .Certifications}}
  <section class="certifications">
    <h2>Certifications</h2>
    {{range .Certifications}}<p class="center">{{.}}</p>
    {{end}}
  </section>
  {{end}}
  {{if .Languages}}
  <section class="languages">
    <h2>Languages</h2>
    <p class="center">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </section>
  {{end}}
  {{if .Projects}}
  <section class="projects">
    <h2>Selected Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <div class="job-title center">{{.Name}}</div>
      <p class="center">{{.Description}}{{if .URL}} ({{.URL}}){{end}}</p>
    </div>
    {{end}}
  </section>
  {{end}}
</div>`
